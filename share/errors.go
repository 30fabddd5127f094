package share

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// IsContextClosedError reports whether err comes from a cancelled or expired context,
// looking through url.Error and pkg/errors wrapping.
func IsContextClosedError(err error) bool {
	if err == nil {
		return false
	}

	err = errors.Cause(err)

	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}

	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
