package service

import (
	"context"
	"fmt"

	"waste-movements/internal/features/drafts/domain"
)

// Carrier and recovery-facility entries are addressed by id in the URL, so
// the section views returned here carry the parent status plus only the
// entry the caller asked about.

// GetCarriers returns the whole carriers section.
func (s *DraftService) GetCarriers(ctx context.Context, id string) (domain.Carriers, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.Carriers{}, err
	}
	return draft.Carriers, nil
}

// CreateCarrier appends a blank carrier entry and returns the section view
// holding just the new entry.
func (s *DraftService) CreateCarrier(ctx context.Context, id string, value domain.Carriers) (domain.Carriers, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.Carriers{}, err
	}
	carrierID, updated, err := draft.CreateCarrier(value, s.limits.Carriers, s.ids)
	if err != nil {
		return domain.Carriers{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.Carriers{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return carrierView(updated.Carriers, carrierID)
}

// GetCarrier returns the section view for one carrier entry.
func (s *DraftService) GetCarrier(ctx context.Context, id, carrierID string) (domain.Carriers, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.Carriers{}, err
	}
	return carrierView(draft.Carriers, carrierID)
}

// SetCarrier replaces one carrier entry, or resets the whole section when the
// incoming status is NotStarted.
func (s *DraftService) SetCarrier(ctx context.Context, id, carrierID string, value domain.Carriers) (domain.Carriers, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.Carriers{}, err
	}
	updated, err := draft.SetCarrier(carrierID, value)
	if err != nil {
		return domain.Carriers{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.Carriers{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.Carriers, nil
}

// DeleteCarrier removes one carrier entry.
func (s *DraftService) DeleteCarrier(ctx context.Context, id, carrierID string) error {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	updated, err := draft.DeleteCarrier(carrierID)
	if err != nil {
		return err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return fmt.Errorf("service: failed to save draft: %w", err)
	}
	return nil
}

// GetRecoveryFacilities returns the whole recovery-facility section.
func (s *DraftService) GetRecoveryFacilities(ctx context.Context, id string) (domain.RecoveryFacilityDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	return draft.RecoveryFacilityDetail, nil
}

// CreateRecoveryFacility appends a blank facility entry and returns the
// section view holding just the new entry.
func (s *DraftService) CreateRecoveryFacility(ctx context.Context, id string, value domain.RecoveryFacilityDetail) (domain.RecoveryFacilityDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	facilityID, updated, err := draft.CreateRecoveryFacility(value, s.limits.Facilities, s.ids)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.RecoveryFacilityDetail{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return facilityView(updated.RecoveryFacilityDetail, facilityID)
}

// GetRecoveryFacility returns the section view for one facility entry.
func (s *DraftService) GetRecoveryFacility(ctx context.Context, id, facilityID string) (domain.RecoveryFacilityDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	return facilityView(draft.RecoveryFacilityDetail, facilityID)
}

// SetRecoveryFacility replaces one facility entry, or resets the whole
// section when the incoming status is NotStarted.
func (s *DraftService) SetRecoveryFacility(ctx context.Context, id, facilityID string, value domain.RecoveryFacilityDetail) (domain.RecoveryFacilityDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	updated, err := draft.SetRecoveryFacility(facilityID, value)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.RecoveryFacilityDetail{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.RecoveryFacilityDetail, nil
}

// DeleteRecoveryFacility removes one facility entry.
func (s *DraftService) DeleteRecoveryFacility(ctx context.Context, id, facilityID string) error {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	updated, err := draft.DeleteRecoveryFacility(facilityID)
	if err != nil {
		return err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return fmt.Errorf("service: failed to save draft: %w", err)
	}
	return nil
}

func carrierView(carriers domain.Carriers, carrierID string) (domain.Carriers, error) {
	entry, err := domain.GetCarrier(carriers, carrierID)
	if err != nil {
		return domain.Carriers{}, err
	}
	carriers.Values = []domain.Carrier{entry}
	return carriers, nil
}

func facilityView(facilities domain.RecoveryFacilityDetail, facilityID string) (domain.RecoveryFacilityDetail, error) {
	entry, err := domain.GetRecoveryFacility(facilities, facilityID)
	if err != nil {
		return domain.RecoveryFacilityDetail{}, err
	}
	facilities.Values = []domain.RecoveryFacility{entry}
	return facilities, nil
}
