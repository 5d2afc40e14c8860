package service

import (
	"github.com/deppfellow/nested-comments/internal/sqlerr"
)

// commit is the single exit for store results. A nil error passes v
// through; any other error becomes the 500 *errs.HTTPError carrying the
// store's message (an *errs.HTTPError is kept as is).
func commit[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, sqlerr.HandleError(err)
	}
	return v, nil
}

// commitErr is commit for store calls that only return an error.
func commitErr(err error) error {
	_, err = commit(struct{}{}, err)
	return err
}
