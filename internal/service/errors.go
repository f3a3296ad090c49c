package service

import (
	"errors"

	"github.com/mefdet1/Assignment-5/internal/repository"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup by identity that matched no row.
// Entity is the human-readable kind, e.g. "Sandwich" or "Order detail".
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func translate(entity string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return err
}
