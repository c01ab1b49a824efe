package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecoveryFacility_LockedSection(t *testing.T) {
	ids := &seqIDGenerator{}
	current := RecoveryFacilityDetail{Status: SectionCannotStart}

	_, updated, err := CreateRecoveryFacility(current, RecoveryFacilityDetail{Status: SectionStarted}, FacilityLimits{InterimSite: 1, RecoveryFacility: 5}, ids)

	assert.ErrorIs(t, err, ErrSectionLocked)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, current, updated)
}

func TestCreateRecoveryFacility_CeilingIsSumOfKinds(t *testing.T) {
	ids := &seqIDGenerator{}
	limits := FacilityLimits{InterimSite: 1, RecoveryFacility: 2}
	current := RecoveryFacilityDetail{Status: SectionNotStarted}

	for i := 0; i < limits.Max(); i++ {
		_, updated, err := CreateRecoveryFacility(current, RecoveryFacilityDetail{Status: SectionStarted}, limits, ids)
		require.NoError(t, err)
		current = updated
	}
	require.Len(t, current.Values, 3)

	_, updated, err := CreateRecoveryFacility(current, RecoveryFacilityDetail{Status: SectionStarted}, limits, ids)
	assert.ErrorIs(t, err, ErrCollectionFull)
	assert.Equal(t, current, updated)
}

func TestCreateRecoveryFacility_RequiresStartedPayload(t *testing.T) {
	ids := &seqIDGenerator{}
	current := RecoveryFacilityDetail{Status: SectionNotStarted}

	_, _, err := CreateRecoveryFacility(current, RecoveryFacilityDetail{Status: SectionComplete}, FacilityLimits{RecoveryFacility: 5}, ids)
	assert.ErrorIs(t, err, ErrEntryNotStarted)
}

func TestSetRecoveryFacility_ReplaceAndReset(t *testing.T) {
	current := RecoveryFacilityDetail{
		Status: SectionStarted,
		Values: []RecoveryFacility{{ID: "f1"}, {ID: "f2"}},
	}

	updated, err := SetRecoveryFacility(current, "f1", RecoveryFacilityDetail{
		Status: SectionComplete,
		Values: []RecoveryFacility{{
			ID:           "f1",
			Type:         FacilityInterimSite,
			RecoveryCode: "R13",
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, SectionComplete, updated.Status)
	require.Len(t, updated.Values, 2)
	assert.Equal(t, FacilityInterimSite, updated.Values[0].Type)
	assert.Equal(t, "f2", updated.Values[1].ID)

	reset, err := SetRecoveryFacility(updated, "f1", RecoveryFacilityDetail{Status: SectionNotStarted})
	require.NoError(t, err)
	assert.Equal(t, SectionNotStarted, reset.Status)
	assert.Empty(t, reset.Values)
}

func TestSetRecoveryFacility_LockedSection(t *testing.T) {
	current := RecoveryFacilityDetail{Status: SectionCannotStart}

	_, err := SetRecoveryFacility(current, "f1", RecoveryFacilityDetail{Status: SectionStarted})
	assert.ErrorIs(t, err, ErrSectionLocked)
}

func TestDeleteRecoveryFacility(t *testing.T) {
	current := RecoveryFacilityDetail{
		Status: SectionComplete,
		Values: []RecoveryFacility{{ID: "f1"}, {ID: "f2"}},
	}

	updated, err := DeleteRecoveryFacility(current, "f1")
	require.NoError(t, err)
	assert.Equal(t, SectionComplete, updated.Status)
	require.Len(t, updated.Values, 1)
	assert.Equal(t, "f2", updated.Values[0].ID)

	emptied, err := DeleteRecoveryFacility(updated, "f2")
	require.NoError(t, err)
	assert.Equal(t, SectionNotStarted, emptied.Status)
	assert.Empty(t, emptied.Values)

	_, err = DeleteRecoveryFacility(emptied, "f2")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestGetRecoveryFacility(t *testing.T) {
	current := RecoveryFacilityDetail{
		Status: SectionStarted,
		Values: []RecoveryFacility{{ID: "f1", Type: FacilityLaboratory, DisposalCode: "D15"}},
	}

	got, err := GetRecoveryFacility(current, "f1")
	require.NoError(t, err)
	assert.Equal(t, "D15", got.DisposalCode)

	_, err = GetRecoveryFacility(current, "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
