package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/localstore"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
)

// FallbackPolicy decides, from the kind of a remote failure, whether the
// operation is retried against the local store
type FallbackPolicy func(kind apperror.Kind) bool

// FallbackAlways falls back on every remote failure
func FallbackAlways(apperror.Kind) bool {
	return true
}

// FallbackOnOutage falls back only when the remote could not answer. Missing
// records and rejected writes are returned to the caller.
func FallbackOnOutage(kind apperror.Kind) bool {
	switch kind {
	case apperror.KindUnavailable, apperror.KindUnknown, apperror.KindCorrupt:
		return true
	default:
		return false
	}
}

// ParseFallbackPolicy maps a configuration value to a policy
func ParseFallbackPolicy(name string) (FallbackPolicy, error) {
	switch name {
	case "", "always":
		return FallbackAlways, nil
	case "outage":
		return FallbackOnOutage, nil
	default:
		return nil, fmt.Errorf("unknown fallback policy %q", name)
	}
}

type Option func(*Store)

func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(s *Store) {
		if policy != nil {
			s.fallback = policy
		}
	}
}

// WithClock overrides the time source used for invoice numbers and print
// stamps on both stores
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
		if s.local != nil {
			s.local.SetClock(now)
		}
	}
}

// Store is the single persistence entry point. Each call goes to the remote
// backend when one is configured and falls back to the local store according
// to the fallback policy. Nothing written locally is ever pushed to the remote.
type Store struct {
	remote   domainRepo.Backend
	local    *localstore.Store
	fallback FallbackPolicy
	now      func() time.Time
}

// New creates the facade. A nil remote means local-only operation.
func New(remote domainRepo.Backend, local *localstore.Store, opts ...Option) *Store {
	s := &Store{
		remote:   remote,
		local:    local,
		fallback: FallbackAlways,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the name of the configured primary backend
func (s *Store) Backend() string {
	if s.remote == nil {
		return localstore.BackendName
	}
	return s.remote.Name()
}

// Status describes the reachability of both stores
type Status struct {
	Backend     string `json:"backend"`
	RemoteOK    bool   `json:"remote_ok"`
	RemoteError string `json:"remote_error,omitempty"`
	LocalOK     bool   `json:"local_ok"`
	LocalError  string `json:"local_error,omitempty"`
}

// Ping reports which backend is active and whether it answered
func (s *Store) Ping(ctx context.Context) Status {
	status := Status{Backend: s.Backend()}
	if s.remote != nil {
		if err := s.remote.Ping(ctx); err != nil {
			status.RemoteError = err.Error()
		} else {
			status.RemoteOK = true
		}
	}
	if err := s.local.Ping(ctx); err != nil {
		status.LocalError = err.Error()
	} else {
		status.LocalOK = true
	}
	return status
}

// tryRemote runs fn on the remote backend. handled is false when there is no
// remote or the failure should be answered by the local store instead.
func tryRemote[T any](s *Store, op string, fn func(domainRepo.Backend) (T, error)) (result T, handled bool, err error) {
	var zero T
	if s.remote == nil {
		return zero, false, nil
	}

	result, err = fn(s.remote)
	if err == nil {
		return result, true, nil
	}

	kind := apperror.KindOf(err)
	if !s.fallback(kind) {
		return zero, true, err
	}
	log.Printf("[store] %s on %s failed (%s), using local store: %v", op, s.remote.Name(), kind, err)
	return zero, false, nil
}

var errMissingID = errors.New("backend returned a record without id")

// requireID turns a create that came back without an id into a failure
func requireID(backend, op, id string) error {
	if id == "" {
		return apperror.NewStoreError(backend, op, apperror.KindUnknown, errMissingID)
	}
	return nil
}

// readLocal answers a failed local read with the zero value
func readLocal[T any](v T, err error) (T, error) {
	if err != nil {
		log.Printf("[store] local read failed, answering empty: %v", err)
		var zero T
		return zero, nil
	}
	return v, nil
}
