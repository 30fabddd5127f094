package fflogs

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

type apiCall struct {
	path   string
	params Params
}

// fakeAPI answers each path with its queued JSON bodies in order.
type fakeAPI struct {
	bodies map[string][]string
	errs   map[string]error
	calls  []apiCall
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		bodies: make(map[string][]string),
		errs:   make(map[string]error),
	}
}

func (f *fakeAPI) queue(path string, bodies ...string) *fakeAPI {
	f.bodies[path] = append(f.bodies[path], bodies...)
	return f
}

func (f *fakeAPI) Get(ctx context.Context, path string, params Params, resp interface{}) error {
	f.calls = append(f.calls, apiCall{path: path, params: params})

	if err, ok := f.errs[path]; ok {
		return err
	}

	q := f.bodies[path]
	if len(q) == 0 {
		return errors.Errorf("unexpected call to %s", path)
	}
	f.bodies[path] = q[1:]

	return json.UnmarshalFromString(q[0], resp)
}

func (f *fakeAPI) starts() []int64 {
	out := make([]int64, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.params["start"].(int64)
	}
	return out
}

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Get(ctx context.Context, path string, params Params, resp interface{}) error {
	args := m.Called(ctx, path, params, resp)
	return args.Error(0)
}

func timestamps(events []Event) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.Timestamp()
	}
	return out
}
