package store

import (
	"context"
	"log"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
)

// GetProfile returns the business profile. It never fails: when neither store
// can answer the default profile is returned.
func (s *Store) GetProfile(ctx context.Context) *entity.BusinessProfile {
	profile, ok, err := tryRemote(s, "get profile", func(b domainRepo.Backend) (*entity.BusinessProfile, error) {
		return b.Profiles().Get(ctx)
	})
	if ok && err == nil {
		return profile
	}
	if err != nil {
		log.Printf("[store] profile unavailable on %s, reading local profile: %v", s.Backend(), err)
	}

	profile, err = s.local.GetProfile(ctx)
	if err != nil || profile == nil {
		log.Printf("[store] local profile unavailable, using defaults: %v", err)
		def := entity.DefaultProfile()
		return &def
	}
	return profile
}

// UpdateProfile merges patch into the current profile and stores the result
func (s *Store) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (*entity.BusinessProfile, error) {
	current := *s.GetProfile(ctx)
	patch.Apply(&current)

	saved, ok, err := tryRemote(s, "save profile", func(b domainRepo.Backend) (*entity.BusinessProfile, error) {
		remote := current
		if _, err := b.Profiles().Save(ctx, &remote); err != nil {
			return nil, err
		}
		return b.Profiles().Get(ctx)
	})
	if ok {
		return saved, err
	}
	return s.local.SaveProfile(ctx, current)
}

func (s *Store) ListPrintedInvoices(ctx context.Context) ([]entity.PrintedInvoice, error) {
	invoices, ok, err := tryRemote(s, "list printed invoices", func(b domainRepo.Backend) ([]entity.PrintedInvoice, error) {
		return b.PrintedInvoices().List(ctx)
	})
	if ok {
		return invoices, err
	}
	return readLocal(s.local.ListPrintedInvoices(ctx))
}

// RecordPrint appends a print audit record. A zero PrintedAt is stamped with the current time.
func (s *Store) RecordPrint(ctx context.Context, invoice entity.PrintedInvoice) (*entity.PrintedInvoice, error) {
	if invoice.PrintedAt.IsZero() {
		invoice.PrintedAt = s.now()
	}
	created, ok, err := tryRemote(s, "record print", func(b domainRepo.Backend) (*entity.PrintedInvoice, error) {
		created, err := b.PrintedInvoices().Create(ctx, &invoice)
		if err != nil {
			return nil, err
		}
		return created, requireID(b.Name(), "record print", created.ID)
	})
	if ok {
		return created, err
	}
	return s.local.CreatePrintedInvoice(ctx, invoice)
}
