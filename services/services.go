package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/zsmartex/mocktrade/repositories"
)

var ErrNotFound = errors.New("not found")

// Clock supplies the server-assigned time for created_at, filled_at and the
// exec_time default.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

var SystemClock Clock = ClockFunc(func() time.Time {
	return time.Now().UTC()
})

// FixedClock always reports the same instant.
func FixedClock(at time.Time) Clock {
	return ClockFunc(func() time.Time {
		return at
	})
}

// InvalidFieldError reports a caller-supplied value that cannot be stored.
type InvalidFieldError struct {
	Entity string
	Field  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s.invalid_%s", e.Entity, e.Field)
}

// TranslateError maps storage misses onto ErrNotFound and passes everything
// else through untouched.
func TranslateError(err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}
