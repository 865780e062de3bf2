package bootstrap

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/config"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/appwrite"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/database"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/localstore"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/supabase"
	"gorm.io/gorm"
)

// Stack is the opened persistence layer shared by the server and the CLI
type Stack struct {
	Store *store.Store
	Local *localstore.Store
	// Calendar is the business clock shared by the store and the services
	Calendar service.Calendar

	dbs []*gorm.DB
}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithNow replaces the wall clock behind the business calendar
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Open connects the configured remote backend and the local store. Neither
// failing to open is fatal: a missing local database gives a store that
// reports itself unavailable, and a remote that cannot be reached at startup
// is still registered so that later calls retry it and fall back.
func Open(cfg *config.Config, opts ...Option) (*Stack, error) {
	policy, err := store.ParseFallbackPolicy(cfg.Remote.FallbackPolicy)
	if err != nil {
		return nil, err
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	stack := &Stack{Calendar: service.NewCalendar(cfg.App.Location()).WithNow(o.now)}

	localDB, err := database.NewSQLiteDB(cfg.Local.Path)
	if err != nil {
		log.Printf("Warning: local store unavailable: %v", err)
		localDB = nil
	} else {
		stack.dbs = append(stack.dbs, localDB)
	}
	local, err := localstore.New(localDB)
	if err != nil {
		log.Printf("Warning: %v", err)
		if local, err = localstore.New(nil); err != nil {
			return nil, err
		}
	}
	stack.Local = local

	remote, err := stack.openRemote(cfg)
	if err != nil {
		stack.Close()
		return nil, err
	}

	stack.Store = store.New(remote, local,
		store.WithFallbackPolicy(policy),
		store.WithClock(stack.Calendar.Now),
	)
	log.Printf("Persistence ready: primary backend %s", stack.Store.Backend())
	return stack, nil
}

func (s *Stack) openRemote(cfg *config.Config) (domainRepo.Backend, error) {
	switch cfg.Remote.Kind() {
	case config.BackendSupabase:
		db, err := database.NewPostgresDB(cfg.Remote.Supabase.DatabaseURL, cfg.App.Debug)
		if err != nil {
			return nil, fmt.Errorf("supabase: %w", err)
		}
		s.dbs = append(s.dbs, db)

		driver := supabase.New(db, cfg.Remote.PageSize)
		if cfg.Remote.Supabase.AutoMigrate {
			if err := driver.AutoMigrate(); err != nil {
				log.Printf("Warning: supabase migrations failed: %v", err)
			}
		}
		return driver, nil
	case config.BackendAppwrite:
		return appwrite.New(&cfg.Remote.Appwrite, cfg.Remote.PageSize, cfg.Remote.Timeout), nil
	default:
		return nil, nil
	}
}

// Close releases the database connections
func (s *Stack) Close() {
	for _, db := range s.dbs {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
