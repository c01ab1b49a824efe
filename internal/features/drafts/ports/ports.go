package ports

import (
	"context"

	"waste-movements/internal/features/drafts/domain"
)

// DraftRepository is the secondary port for draft and submission storage.
// Drafts are mutable records addressed by id; submissions are the append-only
// history a draft migrates into on declaration. The storage adapter owns
// concurrency control — the engine treats each draft as a single-writer
// aggregate.
type DraftRepository interface {
	// GetDraft loads a mutable draft. Returns domain.ErrDraftNotFound when
	// the id is unknown or the record has left the mutable set.
	GetDraft(ctx context.Context, id string) (domain.DraftSubmission, error)
	// SaveDraft stores a draft snapshot.
	SaveDraft(ctx context.Context, draft domain.DraftSubmission) error
	// ListDrafts returns all in-progress drafts.
	ListDrafts(ctx context.Context) ([]domain.DraftSubmission, error)
	// MigrateToSubmission atomically removes the draft from the mutable set
	// and stores it as a submission.
	MigrateToSubmission(ctx context.Context, submission domain.DraftSubmission) error
	// GetSubmission loads a submitted record. Returns
	// domain.ErrSubmissionNotFound when absent.
	GetSubmission(ctx context.Context, id string) (domain.DraftSubmission, error)
	// SaveSubmission stores an updated submitted record.
	SaveSubmission(ctx context.Context, submission domain.DraftSubmission) error
	// ListSubmissions returns all submitted records.
	ListSubmissions(ctx context.Context) ([]domain.DraftSubmission, error)
}
