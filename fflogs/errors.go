package fflogs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyQuery     = errors.New("fflogs: search needs a job or a name")
	ErrPlayerNotFound = errors.New("fflogs: player not found")
)

// APIError is returned when the upstream answers with a non-200 status.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fflogs: %s: status %d", e.Path, e.StatusCode)
}

// AmbiguousMatchError means a roster search matched more than one player.
type AmbiguousMatchError struct {
	Query      Query
	Candidates int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("fflogs: %s matched %d players", e.Query, e.Candidates)
}

// DataConsistencyError reports a pet whose owner is not among the friendlies.
type DataConsistencyError struct {
	PetGUID string
	OwnerID int
}

func (e *DataConsistencyError) Error() string {
	return fmt.Sprintf("fflogs: pet %s references unknown owner %d", e.PetGUID, e.OwnerID)
}

// CursorError reports a page whose last timestamp would not advance the cursor.
type CursorError struct {
	Path   string
	Cursor int64
	Next   int64
}

func (e *CursorError) Error() string {
	return fmt.Sprintf("fflogs: %s: page ends at %d, cursor is already %d", e.Path, e.Next-1, e.Cursor)
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsAmbiguous(err error) bool {
	var ambErr *AmbiguousMatchError
	return errors.As(err, &ambErr)
}
