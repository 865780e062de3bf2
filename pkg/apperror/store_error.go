package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a persistence failure so the store facade can decide
// whether to fall back to the local store or surface the error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUnavailable // network, timeout, 5xx, local medium missing
	KindRejected    // auth, schema mismatch, constraint violation
	KindCorrupt     // response or stored data could not be decoded
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnavailable:
		return "unavailable"
	case KindRejected:
		return "rejected"
	case KindCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// HTTPStatus maps the kind to the status used when it reaches a client
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindRejected:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// StoreError is the typed failure returned by backend drivers and the local store
type StoreError struct {
	Backend string
	Op      string
	Kind    Kind
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Backend, e.Op, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Backend, e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with backend, operation and kind
func NewStoreError(backend, op string, kind Kind, err error) *StoreError {
	return &StoreError{Backend: backend, Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first StoreError in err's chain
func KindOf(err error) Kind {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a store error of kind NotFound
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
