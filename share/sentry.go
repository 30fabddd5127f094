package share

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// InitSentry sets up error reporting. An empty dsn leaves the client disabled, so
// sentry.CaptureException calls become no-ops.
func InitSentry(dsn string) error {
	err := sentry.Init(
		sentry.ClientOptions{
			Dsn:           dsn,
			HTTPTransport: new(http.Transport),
		},
	)
	return errors.WithStack(err)
}

// FlushSentry waits for queued events before the process exits.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

type capturedError struct {
	error
}

func (e capturedError) Cause() error  { return e.error }
func (e capturedError) Unwrap() error { return e.error }

func (e capturedError) Format(s fmt.State, verb rune) {
	if f, ok := e.error.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.error.Error())
}

// CaptureError sends err to Sentry unless it is a closed context, and marks it so
// IsCaptured callers further up do not send it again.
func CaptureError(err error) error {
	if err == nil || IsContextClosedError(err) {
		return err
	}
	sentry.CaptureException(err)
	return capturedError{err}
}

// IsCaptured reports whether err, or an error it wraps, went through CaptureError.
func IsCaptured(err error) bool {
	var c capturedError
	return errors.As(err, &c)
}
