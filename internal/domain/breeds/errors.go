package breeds

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// FetchError: la página fuente no se pudo obtener o parsear.
// Invalida toda la cosecha.
type FetchError struct {
	URL   string
	Stage string // fetch | parse
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("harvest %s %s: %v", e.Stage, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistenceError: falló una operación del store.
type PersistenceError struct {
	Op  string // select | insert_many | insert | update
	Key string // description, si aplica
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
