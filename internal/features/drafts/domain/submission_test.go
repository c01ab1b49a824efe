package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveConfirmationStatus_AllSectionsComplete(t *testing.T) {
	draft := completeDraft("d1")
	assert.Equal(t, SectionNotStarted, deriveConfirmationStatus(draft))
}

func TestDeriveConfirmationStatus_AnyIncompleteSectionBlocks(t *testing.T) {
	breakers := map[string]func(d *DraftSubmission){
		"waste description": func(d *DraftSubmission) { d.WasteDescription.Status = SectionStarted },
		"waste quantity":    func(d *DraftSubmission) { d.WasteQuantity.Status = SectionNotStarted },
		"exporter":          func(d *DraftSubmission) { d.ExporterDetail.Status = SectionStarted },
		"importer":          func(d *DraftSubmission) { d.ImporterDetail.Status = SectionNotStarted },
		"collection date":   func(d *DraftSubmission) { d.CollectionDate.Status = SectionNotStarted },
		"carriers":          func(d *DraftSubmission) { d.Carriers.Status = SectionStarted },
		"collection detail": func(d *DraftSubmission) { d.CollectionDetail.Status = SectionStarted },
		"exit location":     func(d *DraftSubmission) { d.UKExitLocation.Status = SectionNotStarted },
		"transit countries": func(d *DraftSubmission) { d.TransitCountries.Status = SectionStarted },
		"recovery facility": func(d *DraftSubmission) { d.RecoveryFacilityDetail.Status = SectionStarted },
	}

	for name, mutate := range breakers {
		t.Run(name, func(t *testing.T) {
			draft := completeDraft("d1")
			mutate(&draft)
			assert.Equal(t, SectionCannotStart, deriveConfirmationStatus(draft))
		})
	}
}

func TestDeriveDeclarationStatus(t *testing.T) {
	draft := completeDraft("d1")
	assert.Equal(t, SectionCannotStart, deriveDeclarationStatus(draft))

	draft.SubmissionConfirmation = SubmissionConfirmation{Status: SectionComplete, Confirmation: true}
	assert.Equal(t, SectionNotStarted, deriveDeclarationStatus(draft))
}

func TestConfirmSubmission_Complete(t *testing.T) {
	draft := completeDraft("d1")

	confirmed, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	require.NoError(t, err)

	assert.Equal(t, SectionComplete, confirmed.SubmissionConfirmation.Status)
	assert.True(t, confirmed.SubmissionConfirmation.Confirmation)
	assert.Equal(t, SectionNotStarted, confirmed.SubmissionDeclaration.Status)
}

func TestConfirmSubmission_LockedWhileSectionsIncomplete(t *testing.T) {
	draft := completeDraft("d1")
	draft.Carriers.Status = SectionStarted
	draft = draft.withDerivedStatuses()

	_, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	assert.ErrorIs(t, err, ErrConfirmationLocked)
}

func TestConfirmSubmission_InvalidDateResetsAndFails(t *testing.T) {
	draft := completeDraft("d1")
	draft.CollectionDate.Value.EstimateDate = DateParts{Day: "soon", Month: "06", Year: "2024"}

	updated, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	assert.ErrorIs(t, err, ErrInvalidDate)

	// The returned draft carries the reset so callers can persist it.
	assert.Equal(t, SectionNotStarted, updated.CollectionDate.Status)
	assert.Nil(t, updated.CollectionDate.Value)
	assert.Equal(t, SectionCannotStart, updated.SubmissionConfirmation.Status)
	assert.Equal(t, SectionCannotStart, updated.SubmissionDeclaration.Status)
}

func TestConfirmSubmission_RejectsStartedStatus(t *testing.T) {
	draft := completeDraft("d1")

	_, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionStarted})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeclareSubmission_LockedWithoutConfirmation(t *testing.T) {
	draft := completeDraft("d1")
	require.Equal(t, SectionCannotStart, draft.SubmissionDeclaration.Status)

	_, submitted, err := draft.DeclareSubmission(SubmissionDeclaration{Status: SectionComplete}, testTime)
	assert.ErrorIs(t, err, ErrDeclarationLocked)
	assert.False(t, submitted)
}

func TestDeclareSubmission_CompleteStampsDeclaration(t *testing.T) {
	draft := completeDraft("a148b186-1b3c-42f0-bb3e-000000000001")
	draft, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	require.NoError(t, err)

	declared, submitted, err := draft.DeclareSubmission(SubmissionDeclaration{Status: SectionComplete}, testTime)
	require.NoError(t, err)
	assert.True(t, submitted)

	require.NotNil(t, declared.SubmissionDeclaration.Values)
	assert.Equal(t, testTime, declared.SubmissionDeclaration.Values.DeclarationTimestamp)
	assert.Equal(t, "2405_A148B186", declared.SubmissionDeclaration.Values.TransactionID)
	// Estimate date and estimate quantity were used, so no actuals yet.
	assert.Equal(t, StateSubmittedWithEstimates, declared.SubmissionState.Status)
	assert.Equal(t, testTime, declared.SubmissionState.Timestamp)
}

func TestDeclareSubmission_ActualsClassifyState(t *testing.T) {
	draft := completeDraft("a148b186-1b3c-42f0-bb3e-000000000002")
	draft.CollectionDate.Value.Type = DateActual
	draft.CollectionDate.Value.ActualDate = DateParts{Day: "20", Month: "06", Year: "2024"}
	draft.WasteQuantity.Value.Type = QuantityActualData
	draft.WasteQuantity.Value.ActualData = &QuantityData{QuantityType: "Weight", Unit: "Tonnes", Value: 11.2}

	draft, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	require.NoError(t, err)

	declared, submitted, err := draft.DeclareSubmission(SubmissionDeclaration{Status: SectionComplete}, testTime)
	require.NoError(t, err)
	assert.True(t, submitted)
	assert.Equal(t, StateSubmittedWithActuals, declared.SubmissionState.Status)
}

func TestDeclareSubmission_AlreadyDeclared(t *testing.T) {
	draft := completeDraft("a148b186-1b3c-42f0-bb3e-000000000003")
	draft, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	require.NoError(t, err)
	declared, _, err := draft.DeclareSubmission(SubmissionDeclaration{Status: SectionComplete}, testTime)
	require.NoError(t, err)

	_, submitted, err := declared.DeclareSubmission(SubmissionDeclaration{Status: SectionComplete}, testTime)
	assert.ErrorIs(t, err, ErrAlreadyDeclared)
	assert.False(t, submitted)
}

func TestDeclareSubmission_InvalidDateResetsAndFails(t *testing.T) {
	draft := completeDraft("a148b186-1b3c-42f0-bb3e-000000000004")
	draft, err := draft.ConfirmSubmission(SubmissionConfirmation{Status: SectionComplete, Confirmation: true})
	require.NoError(t, err)
	draft.CollectionDate.Value.EstimateDate = DateParts{Day: "15", Month: "June", Year: "2024"}

	updated, submitted, err := draft.DeclareSubmission(SubmissionDeclaration{Status: SectionComplete}, testTime)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.False(t, submitted)
	assert.Equal(t, SectionNotStarted, updated.CollectionDate.Status)
	assert.Equal(t, SectionCannotStart, updated.SubmissionConfirmation.Status)
}

func TestTransactionID(t *testing.T) {
	id := TransactionID(time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), "a148b186-1b3c-42f0")
	assert.Equal(t, "2401_A148B186", id)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}_[0-9A-F]{8}$`), id)

	// December keeps the two-digit month.
	assert.Equal(t, "2512_0BC1D2E3", TransactionID(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "0bc1d2e3-ffff"))
}

func TestMarkDeleted(t *testing.T) {
	draft := completeDraft("d1")

	deleted, err := draft.MarkDeleted(testTime)
	require.NoError(t, err)
	assert.Equal(t, StateDeleted, deleted.SubmissionState.Status)

	_, err = deleted.MarkDeleted(testTime)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCancelSubmission(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithEstimates, Timestamp: testTime}

	cancelled, err := draft.CancelSubmission(CancellationType{Type: CancellationNoLongerExport}, testTime)
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, cancelled.SubmissionState.Status)
	require.NotNil(t, cancelled.SubmissionState.CancellationType)
	assert.Equal(t, CancellationNoLongerExport, cancelled.SubmissionState.CancellationType.Type)

	_, err = cancelled.CancelSubmission(CancellationType{Type: CancellationNoLongerExport}, testTime)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCancelSubmission_OtherRequiresReason(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithActuals, Timestamp: testTime}

	_, err := draft.CancelSubmission(CancellationType{Type: CancellationOther}, testTime)
	assert.ErrorIs(t, err, ErrBadRequest)

	cancelled, err := draft.CancelSubmission(CancellationType{Type: CancellationOther, Reason: "duplicate entry"}, testTime)
	require.NoError(t, err)
	assert.Equal(t, "duplicate entry", cancelled.SubmissionState.CancellationType.Reason)
}

func TestCancelSubmission_UnknownType(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithEstimates, Timestamp: testTime}

	_, err := draft.CancelSubmission(CancellationType{Type: "ChangedMyMind"}, testTime)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestUpdateSubmissionCollectionDate_FlipsEstimateState(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithEstimates, Timestamp: testTime}

	later := testTime.Add(48 * time.Hour)
	updated, err := draft.UpdateSubmissionCollectionDate(CollectionDateValue{
		Type:       DateActual,
		ActualDate: DateParts{Day: "21", Month: "06", Year: "2024"},
	}, later)
	require.NoError(t, err)

	assert.Equal(t, StateUpdatedWithActuals, updated.SubmissionState.Status)
	assert.Equal(t, later, updated.SubmissionState.Timestamp)
	// The original estimate stays on the record.
	assert.Equal(t, DateParts{Day: "15", Month: "06", Year: "2024"}, updated.CollectionDate.Value.EstimateDate)
}

func TestUpdateSubmissionCollectionDate_EstimateEditKeepsState(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithEstimates, Timestamp: testTime}

	updated, err := draft.UpdateSubmissionCollectionDate(CollectionDateValue{
		Type:         DateEstimate,
		EstimateDate: DateParts{Day: "18", Month: "06", Year: "2024"},
	}, testTime)
	require.NoError(t, err)
	assert.Equal(t, StateSubmittedWithEstimates, updated.SubmissionState.Status)
}

func TestUpdateSubmissionCollectionDate_InvalidDateRejected(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithEstimates, Timestamp: testTime}

	_, err := draft.UpdateSubmissionCollectionDate(CollectionDateValue{
		Type:       DateActual,
		ActualDate: DateParts{Day: "21st", Month: "06", Year: "2024"},
	}, testTime)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateSubmissionWasteQuantity_FlipsEstimateState(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithEstimates, Timestamp: testTime}

	updated, err := draft.UpdateSubmissionWasteQuantity(WasteQuantityValue{
		Type:       QuantityActualData,
		ActualData: &QuantityData{QuantityType: "Weight", Unit: "Tonnes", Value: 11.9},
	}, testTime)
	require.NoError(t, err)

	assert.Equal(t, StateUpdatedWithActuals, updated.SubmissionState.Status)
	require.NotNil(t, updated.WasteQuantity.Value.EstimateData)
	assert.Equal(t, 12.5, updated.WasteQuantity.Value.EstimateData.Value)
	assert.Equal(t, 11.9, updated.WasteQuantity.Value.ActualData.Value)
}

func TestUpdateSubmissionWasteQuantity_AlreadyActualKeepsState(t *testing.T) {
	draft := completeDraft("d1")
	draft.SubmissionState = SubmissionState{Status: StateSubmittedWithActuals, Timestamp: testTime}

	updated, err := draft.UpdateSubmissionWasteQuantity(WasteQuantityValue{
		Type:       QuantityActualData,
		ActualData: &QuantityData{QuantityType: "Weight", Unit: "Tonnes", Value: 12.0},
	}, testTime)
	require.NoError(t, err)
	assert.Equal(t, StateSubmittedWithActuals, updated.SubmissionState.Status)
}
