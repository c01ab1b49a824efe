package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft_InitialSectionStatuses(t *testing.T) {
	draft, err := NewDraft("d1", "REF-001", testTime)
	require.NoError(t, err)

	assert.Equal(t, "d1", draft.ID)
	assert.Equal(t, "REF-001", draft.Reference)

	assert.Equal(t, SectionNotStarted, draft.WasteDescription.Status)
	assert.Equal(t, SectionCannotStart, draft.WasteQuantity.Status)
	assert.Equal(t, SectionNotStarted, draft.ExporterDetail.Status)
	assert.Equal(t, SectionNotStarted, draft.ImporterDetail.Status)
	assert.Equal(t, SectionNotStarted, draft.CollectionDate.Status)
	assert.Equal(t, SectionNotStarted, draft.Carriers.Status)
	assert.True(t, draft.Carriers.Transport)
	assert.Equal(t, SectionNotStarted, draft.CollectionDetail.Status)
	assert.Equal(t, SectionNotStarted, draft.UKExitLocation.Status)
	assert.Equal(t, SectionNotStarted, draft.TransitCountries.Status)
	assert.Equal(t, SectionCannotStart, draft.RecoveryFacilityDetail.Status)
	assert.Equal(t, SectionCannotStart, draft.SubmissionConfirmation.Status)
	assert.Equal(t, SectionCannotStart, draft.SubmissionDeclaration.Status)
	assert.Equal(t, StateInProgress, draft.SubmissionState.Status)
	assert.Equal(t, testTime, draft.SubmissionState.Timestamp)
}

func TestValidateReference(t *testing.T) {
	assert.NoError(t, ValidateReference("REF-001"))
	assert.NoError(t, ValidateReference(strings.Repeat("x", MaxReferenceLength)))

	err := ValidateReference("")
	assert.ErrorIs(t, err, ErrEmptyReference)
	assert.ErrorIs(t, ValidateReference("   "), ErrEmptyReference)

	err = ValidateReference(strings.Repeat("x", MaxReferenceLength+1))
	assert.ErrorIs(t, err, ErrReferenceTooLong)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSetWasteQuantity_LockedUntilDescriptionStarted(t *testing.T) {
	draft, err := NewDraft("d1", "REF-001", testTime)
	require.NoError(t, err)

	_, err = draft.SetWasteQuantity(WasteQuantity{Status: SectionStarted})
	assert.ErrorIs(t, err, ErrSectionLocked)
}

func TestSetWasteQuantity_MergeRetainsOtherVariant(t *testing.T) {
	draft := completeDraft("d1")

	withActual, err := draft.SetWasteQuantity(WasteQuantity{
		Status: SectionComplete,
		Value: &WasteQuantityValue{
			Type:       QuantityActualData,
			ActualData: &QuantityData{QuantityType: "Weight", Unit: "Tonnes", Value: 11.75},
		},
	})
	require.NoError(t, err)

	value := withActual.WasteQuantity.Value
	require.NotNil(t, value)
	assert.Equal(t, QuantityActualData, value.Type)
	require.NotNil(t, value.ActualData)
	assert.Equal(t, 11.75, value.ActualData.Value)
	// The previously entered estimate survives the toggle.
	require.NotNil(t, value.EstimateData)
	assert.Equal(t, 12.5, value.EstimateData.Value)
}

func TestSetWasteQuantity_NotStartedClearsValue(t *testing.T) {
	draft := completeDraft("d1")

	updated, err := draft.SetWasteQuantity(WasteQuantity{Status: SectionNotStarted})
	require.NoError(t, err)

	assert.Equal(t, SectionNotStarted, updated.WasteQuantity.Status)
	assert.Nil(t, updated.WasteQuantity.Value)
}

func TestSetCollectionDate_MergeRetainsOtherVariant(t *testing.T) {
	draft := completeDraft("d1")

	updated, err := draft.SetCollectionDate(CollectionDate{
		Status: SectionComplete,
		Value: &CollectionDateValue{
			Type:       DateActual,
			ActualDate: DateParts{Day: "20", Month: "06", Year: "2024"},
		},
	})
	require.NoError(t, err)

	value := updated.CollectionDate.Value
	require.NotNil(t, value)
	assert.Equal(t, DateActual, value.Type)
	assert.Equal(t, DateParts{Day: "20", Month: "06", Year: "2024"}, value.ActualDate)
	assert.Equal(t, DateParts{Day: "15", Month: "06", Year: "2024"}, value.EstimateDate)
}

func TestSetCollectionDate_AcceptsUnparsableParts(t *testing.T) {
	draft := completeDraft("d1")

	// Date strings are not parsed at write time; confirmation catches them.
	updated, err := draft.SetCollectionDate(CollectionDate{
		Status: SectionComplete,
		Value: &CollectionDateValue{
			Type:         DateEstimate,
			EstimateDate: DateParts{Day: "soon", Month: "06", Year: "2024"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, SectionComplete, updated.CollectionDate.Status)
}

func TestSetCollectionDate_StartedRejected(t *testing.T) {
	draft := completeDraft("d1")

	_, err := draft.SetCollectionDate(CollectionDate{Status: SectionStarted})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetExporterDetail_CompleteRequiresAddressAndContact(t *testing.T) {
	draft, err := NewDraft("d1", "REF-001", testTime)
	require.NoError(t, err)

	_, err = draft.SetExporterDetail(ExporterDetail{
		Status:  SectionComplete,
		Address: &Address{AddressLine1: "1 Quay Street"},
	})
	assert.ErrorIs(t, err, ErrMissingSectionData)

	updated, err := draft.SetExporterDetail(ExporterDetail{
		Status:  SectionStarted,
		Address: &Address{AddressLine1: "1 Quay Street"},
	})
	require.NoError(t, err)
	assert.Equal(t, SectionStarted, updated.ExporterDetail.Status)
}

func TestSetExitLocation_YesRequiresValue(t *testing.T) {
	draft, err := NewDraft("d1", "REF-001", testTime)
	require.NoError(t, err)

	_, err = draft.SetExitLocation(UKExitLocation{
		Status:       SectionComplete,
		ExitLocation: &ExitLocation{Provided: ExitLocationYes},
	})
	assert.ErrorIs(t, err, ErrMissingSectionData)

	updated, err := draft.SetExitLocation(UKExitLocation{
		Status:       SectionComplete,
		ExitLocation: &ExitLocation{Provided: ExitLocationNo},
	})
	require.NoError(t, err)
	assert.Equal(t, SectionComplete, updated.UKExitLocation.Status)
}

func TestSectionWrite_RederivesConfirmation(t *testing.T) {
	draft := completeDraft("d1")
	require.Equal(t, SectionNotStarted, draft.SubmissionConfirmation.Status)

	updated, err := draft.SetTransitCountries(TransitCountries{Status: SectionStarted, Values: []string{"France [FR]"}})
	require.NoError(t, err)
	assert.Equal(t, SectionCannotStart, updated.SubmissionConfirmation.Status)
	assert.Equal(t, SectionCannotStart, updated.SubmissionDeclaration.Status)

	restored, err := updated.SetTransitCountries(TransitCountries{Status: SectionComplete, Values: []string{"France [FR]"}})
	require.NoError(t, err)
	assert.Equal(t, SectionNotStarted, restored.SubmissionConfirmation.Status)
	assert.Equal(t, SectionCannotStart, restored.SubmissionDeclaration.Status)
}
