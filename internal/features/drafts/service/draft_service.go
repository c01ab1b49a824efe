package service

import (
	"context"
	"fmt"
	"time"

	"waste-movements/internal/features/drafts/domain"
	"waste-movements/internal/features/drafts/ports"
)

// Limits carries the externally configured collection ceilings.
type Limits struct {
	// Carriers is the maximum number of carrier entries per draft.
	Carriers int
	// Facilities are the per-kind ceilings for recovery facility entries.
	Facilities domain.FacilityLimits
}

// DraftService orchestrates the draft lifecycle: it loads a snapshot from the
// repository, applies a pure engine function and persists the result. All
// state rules live in the domain package; the service owns only the
// load/apply/save cycle and the draft-to-submission migration.
type DraftService struct {
	repo   ports.DraftRepository
	ids    domain.IDGenerator
	limits Limits
	now    func() time.Time
}

// NewDraftService creates a DraftService.
func NewDraftService(repo ports.DraftRepository, ids domain.IDGenerator, limits Limits) *DraftService {
	return &DraftService{
		repo:   repo,
		ids:    ids,
		limits: limits,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Used by tests that assert on
// timestamps and transaction ids.
func (s *DraftService) WithClock(now func() time.Time) *DraftService {
	s.now = now
	return s
}

// CreateDraft creates an empty draft with a generated id.
func (s *DraftService) CreateDraft(ctx context.Context, reference string) (domain.DraftSubmission, error) {
	draft, err := domain.NewDraft(s.ids.NewID(), reference, s.now().UTC())
	if err != nil {
		return domain.DraftSubmission{}, err
	}
	if err := s.repo.SaveDraft(ctx, draft); err != nil {
		return domain.DraftSubmission{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return draft, nil
}

// GetDrafts lists all in-progress drafts. Tombstoned drafts stay stored but
// are filtered out here.
func (s *DraftService) GetDrafts(ctx context.Context) ([]domain.DraftSubmission, error) {
	drafts, err := s.repo.ListDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list drafts: %w", err)
	}
	active := make([]domain.DraftSubmission, 0, len(drafts))
	for _, d := range drafts {
		if d.SubmissionState.Status == domain.StateInProgress {
			active = append(active, d)
		}
	}
	return active, nil
}

// GetDraft loads one in-progress draft.
func (s *DraftService) GetDraft(ctx context.Context, id string) (domain.DraftSubmission, error) {
	return s.loadMutable(ctx, id)
}

// DeleteDraft tombstones an in-progress draft.
func (s *DraftService) DeleteDraft(ctx context.Context, id string) error {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := draft.MarkDeleted(s.now().UTC())
	if err != nil {
		return err
	}
	return s.repo.SaveDraft(ctx, deleted)
}

// GetWasteDescription returns the waste-description section.
func (s *DraftService) GetWasteDescription(ctx context.Context, id string) (domain.WasteDescription, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.WasteDescription{}, err
	}
	return draft.WasteDescription, nil
}

// SetWasteDescription applies a waste-description edit, including its resets
// of the carrier, facility and quantity sections.
func (s *DraftService) SetWasteDescription(ctx context.Context, id string, value domain.WasteDescription) (domain.WasteDescription, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.WasteDescription{}, err
	}
	updated, err := draft.SetWasteDescription(value)
	if err != nil {
		return domain.WasteDescription{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.WasteDescription{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.WasteDescription, nil
}

// GetWasteQuantity returns the waste-quantity section.
func (s *DraftService) GetWasteQuantity(ctx context.Context, id string) (domain.WasteQuantity, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.WasteQuantity{}, err
	}
	return draft.WasteQuantity, nil
}

// SetWasteQuantity replaces the waste-quantity section.
func (s *DraftService) SetWasteQuantity(ctx context.Context, id string, value domain.WasteQuantity) (domain.WasteQuantity, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.WasteQuantity{}, err
	}
	updated, err := draft.SetWasteQuantity(value)
	if err != nil {
		return domain.WasteQuantity{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.WasteQuantity{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.WasteQuantity, nil
}

// GetExporterDetail returns the exporter section.
func (s *DraftService) GetExporterDetail(ctx context.Context, id string) (domain.ExporterDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.ExporterDetail{}, err
	}
	return draft.ExporterDetail, nil
}

// SetExporterDetail replaces the exporter section.
func (s *DraftService) SetExporterDetail(ctx context.Context, id string, value domain.ExporterDetail) (domain.ExporterDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.ExporterDetail{}, err
	}
	updated, err := draft.SetExporterDetail(value)
	if err != nil {
		return domain.ExporterDetail{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.ExporterDetail{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.ExporterDetail, nil
}

// GetImporterDetail returns the importer section.
func (s *DraftService) GetImporterDetail(ctx context.Context, id string) (domain.ImporterDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.ImporterDetail{}, err
	}
	return draft.ImporterDetail, nil
}

// SetImporterDetail replaces the importer section.
func (s *DraftService) SetImporterDetail(ctx context.Context, id string, value domain.ImporterDetail) (domain.ImporterDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.ImporterDetail{}, err
	}
	updated, err := draft.SetImporterDetail(value)
	if err != nil {
		return domain.ImporterDetail{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.ImporterDetail{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.ImporterDetail, nil
}

// GetCollectionDate returns the collection-date section.
func (s *DraftService) GetCollectionDate(ctx context.Context, id string) (domain.CollectionDate, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.CollectionDate{}, err
	}
	return draft.CollectionDate, nil
}

// SetCollectionDate replaces the collection-date section.
func (s *DraftService) SetCollectionDate(ctx context.Context, id string, value domain.CollectionDate) (domain.CollectionDate, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.CollectionDate{}, err
	}
	updated, err := draft.SetCollectionDate(value)
	if err != nil {
		return domain.CollectionDate{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.CollectionDate{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.CollectionDate, nil
}

// GetCollectionDetail returns the collection-detail section.
func (s *DraftService) GetCollectionDetail(ctx context.Context, id string) (domain.CollectionDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.CollectionDetail{}, err
	}
	return draft.CollectionDetail, nil
}

// SetCollectionDetail replaces the collection-detail section.
func (s *DraftService) SetCollectionDetail(ctx context.Context, id string, value domain.CollectionDetail) (domain.CollectionDetail, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.CollectionDetail{}, err
	}
	updated, err := draft.SetCollectionDetail(value)
	if err != nil {
		return domain.CollectionDetail{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.CollectionDetail{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.CollectionDetail, nil
}

// GetExitLocation returns the UK exit-location section.
func (s *DraftService) GetExitLocation(ctx context.Context, id string) (domain.UKExitLocation, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.UKExitLocation{}, err
	}
	return draft.UKExitLocation, nil
}

// SetExitLocation replaces the UK exit-location section.
func (s *DraftService) SetExitLocation(ctx context.Context, id string, value domain.UKExitLocation) (domain.UKExitLocation, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.UKExitLocation{}, err
	}
	updated, err := draft.SetExitLocation(value)
	if err != nil {
		return domain.UKExitLocation{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.UKExitLocation{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.UKExitLocation, nil
}

// GetTransitCountries returns the transit-countries section.
func (s *DraftService) GetTransitCountries(ctx context.Context, id string) (domain.TransitCountries, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.TransitCountries{}, err
	}
	return draft.TransitCountries, nil
}

// SetTransitCountries replaces the transit-countries section.
func (s *DraftService) SetTransitCountries(ctx context.Context, id string, value domain.TransitCountries) (domain.TransitCountries, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.TransitCountries{}, err
	}
	updated, err := draft.SetTransitCountries(value)
	if err != nil {
		return domain.TransitCountries{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.TransitCountries{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.TransitCountries, nil
}

func (s *DraftService) loadMutable(ctx context.Context, id string) (domain.DraftSubmission, error) {
	draft, err := s.repo.GetDraft(ctx, id)
	if err != nil {
		return domain.DraftSubmission{}, err
	}
	if draft.SubmissionState.Status != domain.StateInProgress {
		return domain.DraftSubmission{}, domain.ErrDraftNotFound
	}
	return draft, nil
}
