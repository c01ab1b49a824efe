package adapters

import (
	"context"
	"testing"
	"time"

	"waste-movements/internal/core/storage"
	"waste-movements/internal/features/drafts/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*RedisDraftRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := storage.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewRedisDraftRepository(store), mr
}

func testDraft(t *testing.T, id string) domain.DraftSubmission {
	t.Helper()
	draft, err := domain.NewDraft(id, "REF-001", time.Date(2024, time.May, 17, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return draft
}

func TestRedisDraftRepository_SaveAndGetDraft(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	draft := testDraft(t, "d1")
	require.NoError(t, repo.SaveDraft(ctx, draft))

	loaded, err := repo.GetDraft(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, draft.Reference, loaded.Reference)
	assert.Equal(t, domain.SectionCannotStart, loaded.WasteQuantity.Status)
	assert.True(t, loaded.Carriers.Transport)
}

func TestRedisDraftRepository_GetDraft_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetDraft(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRedisDraftRepository_ListDrafts(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, testDraft(t, "d1")))
	require.NoError(t, repo.SaveDraft(ctx, testDraft(t, "d2")))

	drafts, err := repo.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	ids := []string{drafts[0].ID, drafts[1].ID}
	assert.ElementsMatch(t, []string{"d1", "d2"}, ids)
}

func TestRedisDraftRepository_ListDrafts_SkipsDanglingIndexEntries(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, testDraft(t, "d1")))
	require.NoError(t, repo.SaveDraft(ctx, testDraft(t, "d2")))

	// Remove the record but leave its index entry behind.
	mr.Del("draft:d2")

	drafts, err := repo.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "d1", drafts[0].ID)
}

func TestRedisDraftRepository_MigrateToSubmission(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	draft := testDraft(t, "d1")
	require.NoError(t, repo.SaveDraft(ctx, draft))

	draft.SubmissionState.Status = domain.StateSubmittedWithEstimates
	require.NoError(t, repo.MigrateToSubmission(ctx, draft))

	// The draft is gone from the mutable set.
	_, err := repo.GetDraft(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	drafts, err := repo.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Empty(t, drafts)

	// And present in the submission history.
	submission, err := repo.GetSubmission(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmittedWithEstimates, submission.SubmissionState.Status)

	submissions, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Len(t, submissions, 1)
}

func TestRedisDraftRepository_SaveSubmission(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	draft := testDraft(t, "d1")
	draft.SubmissionState.Status = domain.StateSubmittedWithEstimates
	require.NoError(t, repo.MigrateToSubmission(ctx, draft))

	draft.SubmissionState.Status = domain.StateCancelled
	require.NoError(t, repo.SaveSubmission(ctx, draft))

	loaded, err := repo.GetSubmission(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCancelled, loaded.SubmissionState.Status)
}

func TestRedisDraftRepository_GetSubmission_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetSubmission(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
}

func TestRedisDraftRepository_SaveDraft_RoundTripsSections(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	draft := testDraft(t, "d1")
	updated, err := draft.SetWasteDescription(domain.WasteDescription{
		Status:      domain.SectionComplete,
		WasteCode:   &domain.WasteCode{Type: domain.WasteCodeBaselAnnexIX, Code: "B1010"},
		EWCCodes:    []string{"010101"},
		Description: "Clean metal scrap",
	})
	require.NoError(t, err)
	require.NoError(t, repo.SaveDraft(ctx, updated))

	loaded, err := repo.GetDraft(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, loaded.WasteDescription.WasteCode)
	assert.Equal(t, "B1010", loaded.WasteDescription.WasteCode.Code)
	assert.Equal(t, []string{"010101"}, loaded.WasteDescription.EWCCodes)
	assert.Equal(t, domain.SectionNotStarted, loaded.WasteQuantity.Status)
}
