package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"waste-movements/internal/core/storage"
	"waste-movements/internal/features/drafts/domain"
)

const (
	draftKeyPrefix      = "draft:"
	submissionKeyPrefix = "submission:"
	draftIndex          = "drafts"
	submissionIndex     = "submissions"
)

// RedisDraftRepository implements ports.DraftRepository on the storage port.
// Drafts and submissions are JSON documents with one index set per
// collection so listings avoid a key scan.
type RedisDraftRepository struct {
	store storage.Store
}

// NewRedisDraftRepository creates a new RedisDraftRepository.
func NewRedisDraftRepository(store storage.Store) *RedisDraftRepository {
	return &RedisDraftRepository{store: store}
}

// GetDraft loads a draft by id.
func (r *RedisDraftRepository) GetDraft(ctx context.Context, id string) (domain.DraftSubmission, error) {
	return r.get(ctx, draftKeyPrefix+id, domain.ErrDraftNotFound)
}

// SaveDraft stores a draft snapshot and indexes it.
func (r *RedisDraftRepository) SaveDraft(ctx context.Context, draft domain.DraftSubmission) error {
	if err := r.set(ctx, draftKeyPrefix+draft.ID, draft); err != nil {
		return err
	}
	return r.store.AddToIndex(ctx, draftIndex, draft.ID)
}

// ListDrafts returns every stored draft, tombstoned ones included; the
// service filters by state.
func (r *RedisDraftRepository) ListDrafts(ctx context.Context) ([]domain.DraftSubmission, error) {
	return r.list(ctx, draftIndex, draftKeyPrefix)
}

// MigrateToSubmission moves a declared draft into the submission set.
func (r *RedisDraftRepository) MigrateToSubmission(ctx context.Context, submission domain.DraftSubmission) error {
	if err := r.set(ctx, submissionKeyPrefix+submission.ID, submission); err != nil {
		return err
	}
	if err := r.store.AddToIndex(ctx, submissionIndex, submission.ID); err != nil {
		return err
	}
	if err := r.store.RemoveFromIndex(ctx, draftIndex, submission.ID); err != nil {
		return err
	}
	return r.store.Delete(ctx, draftKeyPrefix+submission.ID)
}

// GetSubmission loads a submitted record by id.
func (r *RedisDraftRepository) GetSubmission(ctx context.Context, id string) (domain.DraftSubmission, error) {
	return r.get(ctx, submissionKeyPrefix+id, domain.ErrSubmissionNotFound)
}

// SaveSubmission stores an updated submitted record.
func (r *RedisDraftRepository) SaveSubmission(ctx context.Context, submission domain.DraftSubmission) error {
	if err := r.set(ctx, submissionKeyPrefix+submission.ID, submission); err != nil {
		return err
	}
	return r.store.AddToIndex(ctx, submissionIndex, submission.ID)
}

// ListSubmissions returns every submitted record.
func (r *RedisDraftRepository) ListSubmissions(ctx context.Context) ([]domain.DraftSubmission, error) {
	return r.list(ctx, submissionIndex, submissionKeyPrefix)
}

func (r *RedisDraftRepository) get(ctx context.Context, key string, notFound error) (domain.DraftSubmission, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return domain.DraftSubmission{}, notFound
		}
		return domain.DraftSubmission{}, fmt.Errorf("failed to load record %s: %w", key, err)
	}
	var record domain.DraftSubmission
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.DraftSubmission{}, fmt.Errorf("failed to unmarshal record %s: %w", key, err)
	}
	return record, nil
}

func (r *RedisDraftRepository) set(ctx context.Context, key string, record domain.DraftSubmission) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to store record %s: %w", key, err)
	}
	return nil
}

func (r *RedisDraftRepository) list(ctx context.Context, index, prefix string) ([]domain.DraftSubmission, error) {
	ids, err := r.store.IndexMembers(ctx, index)
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", index, err)
	}
	records := make([]domain.DraftSubmission, 0, len(ids))
	for _, id := range ids {
		record, err := r.get(ctx, prefix+id, storage.ErrKeyNotFound)
		if err != nil {
			// Index entries can outlive their record when a migration is
			// interrupted between writes; skip them.
			if errors.Is(err, storage.ErrKeyNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
