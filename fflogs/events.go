package fflogs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
)

type iterState int

const (
	stateFetch iterState = iota // next call requests the page at cursor
	stateLast                   // the page just yielded closed the stream
	stateDone
)

// EventIterator walks the events of one fight page by page. Each Next issues at most
// one upstream request. It is not restartable; call Fight.Events again for a new cursor.
type EventIterator struct {
	api    API
	path   string
	params Params

	origin int64
	end    int64
	cursor int64

	state iterState
	page  []Event
	err   error

	requests int
}

func newEventIterator(api API, path string, params Params, ft FightTime) *EventIterator {
	return &EventIterator{
		api:    api,
		path:   path,
		params: params.Clone(),
		origin: ft.StartMS,
		end:    ft.EndMS,
		cursor: ft.StartMS,
	}
}

// Next fetches the next page. It returns false once the stream is exhausted or a
// request failed; check Err afterwards.
func (it *EventIterator) Next(ctx context.Context) bool {
	it.page = nil

	switch it.state {
	case stateLast:
		it.state = stateDone
		return false
	case stateDone:
		return false
	}

	if err := ctx.Err(); err != nil {
		it.fail(errors.WithStack(err))
		return false
	}

	var resp eventsResponse
	err := it.api.Get(ctx, it.path, it.params.with(it.cursor, it.end), &resp)
	it.requests++
	if err != nil {
		it.fail(err)
		return false
	}

	raw := resp.Events
	if len(raw) == 0 {
		it.state = stateDone
		return false
	}

	if len(raw) == 1 {
		it.state = stateLast
	} else {
		next := raw[len(raw)-1].Timestamp() + 1
		if next <= it.cursor {
			it.fail(&CursorError{Path: it.path, Cursor: it.cursor, Next: next})
			return false
		}
		it.cursor = next
	}

	page := make([]Event, len(raw))
	for i, e := range raw {
		page[i] = e.rebase(it.origin)
	}
	it.page = page

	return true
}

func (it *EventIterator) fail(err error) {
	it.err = err
	it.state = stateDone
}

// Page returns the rebased events of the last successful Next.
func (it *EventIterator) Page() []Event {
	return it.page
}

func (it *EventIterator) Err() error {
	return it.err
}

// Done reports whether a further Next would issue no request.
func (it *EventIterator) Done() bool {
	return it.state != stateFetch
}

// Cursor is the start parameter of the next request.
func (it *EventIterator) Cursor() int64 {
	return it.cursor
}

// Requests is the number of upstream calls issued so far.
func (it *EventIterator) Requests() int {
	return it.requests
}

func (it *EventIterator) String() string {
	return fmt.Sprintf("%s@%d", it.path, it.cursor)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Events opens a fresh cursor over the fight's events of view. params are copied.
func (f *Fight) Events(view string, params Params) *EventIterator {
	return newEventIterator(
		f.api,
		fmt.Sprintf("report/events/%s/%s", view, f.ReportID),
		params,
		f.Time,
	)
}

// GetEvents drains Events into one slice, pausing f.PageDelay between upstream calls.
func (f *Fight) GetEvents(ctx context.Context, view string, params Params) ([]Event, error) {
	it := f.Events(view, params)

	var events []Event
	for it.Next(ctx) {
		events = append(events, it.Page()...)

		if it.Done() {
			break
		}
		if err := sleep(ctx, f.PageDelay); err != nil {
			return nil, err
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	log.Printf("events %s fight %d: %d events in %d requests\n", view, f.ID, len(events), it.Requests())

	return events, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
