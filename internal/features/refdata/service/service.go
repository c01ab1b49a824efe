package service

import (
	"context"
	"fmt"

	"waste-movements/internal/features/refdata/domain"
	"waste-movements/internal/features/refdata/ports"
)

// ReferenceDataService exposes the regulatory lists to the HTTP layer.
type ReferenceDataService struct {
	provider ports.ReferenceDataProvider
}

// NewReferenceDataService creates a ReferenceDataService.
func NewReferenceDataService(provider ports.ReferenceDataProvider) *ReferenceDataService {
	return &ReferenceDataService{provider: provider}
}

// Countries returns the country list.
func (s *ReferenceDataService) Countries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.provider.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load countries: %w", err)
	}
	return countries, nil
}

// WasteCodes returns the waste-code lists grouped by category.
func (s *ReferenceDataService) WasteCodes(ctx context.Context) ([]domain.WasteCodeGroup, error) {
	groups, err := s.provider.WasteCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load waste codes: %w", err)
	}
	return groups, nil
}

// EWCCodes returns the European Waste Catalogue list.
func (s *ReferenceDataService) EWCCodes(ctx context.Context) ([]domain.EWCCode, error) {
	codes, err := s.provider.EWCCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load EWC codes: %w", err)
	}
	return codes, nil
}

// Pops returns the persistent-organic-pollutant list.
func (s *ReferenceDataService) Pops(ctx context.Context) ([]domain.Pop, error) {
	pops, err := s.provider.Pops(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load POPs: %w", err)
	}
	return pops, nil
}
