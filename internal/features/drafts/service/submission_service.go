package service

import (
	"context"
	"errors"
	"fmt"

	"waste-movements/internal/features/drafts/domain"
)

// GetSubmissionConfirmation returns the confirmation section.
func (s *DraftService) GetSubmissionConfirmation(ctx context.Context, id string) (domain.SubmissionConfirmation, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.SubmissionConfirmation{}, err
	}
	return draft.SubmissionConfirmation, nil
}

// SetSubmissionConfirmation applies the explicit check-your-answers action.
// When the engine rejects the call because the collection date failed to
// parse, the partially-reset draft is still persisted before the error is
// returned — callers must re-fetch.
func (s *DraftService) SetSubmissionConfirmation(ctx context.Context, id string, value domain.SubmissionConfirmation) (domain.SubmissionConfirmation, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.SubmissionConfirmation{}, err
	}
	updated, err := draft.ConfirmSubmission(value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			if saveErr := s.repo.SaveDraft(ctx, updated); saveErr != nil {
				return domain.SubmissionConfirmation{}, fmt.Errorf("service: failed to save draft: %w", saveErr)
			}
		}
		return domain.SubmissionConfirmation{}, err
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.SubmissionConfirmation{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.SubmissionConfirmation, nil
}

// GetSubmissionDeclaration returns the declaration section.
func (s *DraftService) GetSubmissionDeclaration(ctx context.Context, id string) (domain.SubmissionDeclaration, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.SubmissionDeclaration{}, err
	}
	return draft.SubmissionDeclaration, nil
}

// SetSubmissionDeclaration applies the explicit declaration action. A
// completed declaration migrates the draft into the immutable submission
// history; this is the only irreversible transition in the engine. The same
// invalid-date reset-and-fail behaviour as confirmation applies.
func (s *DraftService) SetSubmissionDeclaration(ctx context.Context, id string, value domain.SubmissionDeclaration) (domain.SubmissionDeclaration, error) {
	draft, err := s.loadMutable(ctx, id)
	if err != nil {
		return domain.SubmissionDeclaration{}, err
	}
	updated, submitted, err := draft.DeclareSubmission(value, s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			if saveErr := s.repo.SaveDraft(ctx, updated); saveErr != nil {
				return domain.SubmissionDeclaration{}, fmt.Errorf("service: failed to save draft: %w", saveErr)
			}
		}
		return domain.SubmissionDeclaration{}, err
	}
	if submitted {
		if err := s.repo.MigrateToSubmission(ctx, updated); err != nil {
			return domain.SubmissionDeclaration{}, fmt.Errorf("service: failed to migrate draft to submission: %w", err)
		}
		return updated.SubmissionDeclaration, nil
	}
	if err := s.repo.SaveDraft(ctx, updated); err != nil {
		return domain.SubmissionDeclaration{}, fmt.Errorf("service: failed to save draft: %w", err)
	}
	return updated.SubmissionDeclaration, nil
}

// GetSubmissions lists submitted records, including cancelled ones.
func (s *DraftService) GetSubmissions(ctx context.Context) ([]domain.DraftSubmission, error) {
	submissions, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list submissions: %w", err)
	}
	return submissions, nil
}

// GetSubmission loads one submitted record.
func (s *DraftService) GetSubmission(ctx context.Context, id string) (domain.DraftSubmission, error) {
	return s.repo.GetSubmission(ctx, id)
}

// CancelSubmission cancels a submitted record.
func (s *DraftService) CancelSubmission(ctx context.Context, id string, cancellation domain.CancellationType) error {
	submission, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return err
	}
	cancelled, err := submission.CancelSubmission(cancellation, s.now().UTC())
	if err != nil {
		return err
	}
	return s.repo.SaveSubmission(ctx, cancelled)
}

// SetSubmissionCollectionDate updates the collection date on a submitted
// record; supplying the actual date while the record still carries estimates
// flips its state to UpdatedWithActuals.
func (s *DraftService) SetSubmissionCollectionDate(ctx context.Context, id string, value domain.CollectionDateValue) (domain.CollectionDate, error) {
	submission, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return domain.CollectionDate{}, err
	}
	updated, err := submission.UpdateSubmissionCollectionDate(value, s.now().UTC())
	if err != nil {
		return domain.CollectionDate{}, err
	}
	if err := s.repo.SaveSubmission(ctx, updated); err != nil {
		return domain.CollectionDate{}, fmt.Errorf("service: failed to save submission: %w", err)
	}
	return updated.CollectionDate, nil
}

// SetSubmissionWasteQuantity updates the waste quantity on a submitted
// record, with the same estimate-to-actual state flip as the date.
func (s *DraftService) SetSubmissionWasteQuantity(ctx context.Context, id string, value domain.WasteQuantityValue) (domain.WasteQuantity, error) {
	submission, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return domain.WasteQuantity{}, err
	}
	updated, err := submission.UpdateSubmissionWasteQuantity(value, s.now().UTC())
	if err != nil {
		return domain.WasteQuantity{}, err
	}
	if err := s.repo.SaveSubmission(ctx, updated); err != nil {
		return domain.WasteQuantity{}, fmt.Errorf("service: failed to save submission: %w", err)
	}
	return updated.WasteQuantity, nil
}
