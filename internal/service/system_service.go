package service

import (
	"context"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/store"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	store   store.Store
	backend string
}

// NewSystemService creates a new SystemService
func NewSystemService(st store.Store, backend string) *SystemService {
	return &SystemService{
		store:   st,
		backend: backend,
	}
}

// CheckHealth checks that the backing store is readable.
func (s *SystemService) CheckHealth(ctx context.Context) error {
	_, err := s.store.Load(ctx)
	return err
}

// Backend returns the configured store backend name.
func (s *SystemService) Backend() string {
	return s.backend
}

// CheckVersion returns the application version.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
