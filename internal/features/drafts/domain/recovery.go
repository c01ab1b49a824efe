package domain

// RecoveryFacilityType discriminates the kind of site handling the waste.
type RecoveryFacilityType string

const (
	FacilityLaboratory       RecoveryFacilityType = "Laboratory"
	FacilityInterimSite      RecoveryFacilityType = "InterimSite"
	FacilityRecoveryFacility RecoveryFacilityType = "RecoveryFacility"
)

// RecoveryFacility is one entry in the recovery-facility section. Laboratory
// entries carry a disposal code; interim sites and recovery facilities carry
// a recovery code.
type RecoveryFacility struct {
	ID           string               `json:"id"`
	Address      *Address             `json:"addressDetails,omitempty"`
	Contact      *Contact             `json:"contactDetails,omitempty"`
	Type         RecoveryFacilityType `json:"type,omitempty"`
	RecoveryCode string               `json:"recoveryCode,omitempty"`
	DisposalCode string               `json:"disposalCode,omitempty"`
}

// RecoveryFacilityDetail is the ordered facility collection. It stays
// CannotStart until a waste code has been supplied.
type RecoveryFacilityDetail struct {
	Status SectionStatus      `json:"status"`
	Values []RecoveryFacility `json:"values,omitempty"`
}

// FacilityLimits are the configured per-kind ceilings for the facility
// collection. The overall ceiling is their sum.
type FacilityLimits struct {
	InterimSite      int
	RecoveryFacility int
}

// Max is the total number of entries the collection may hold.
func (l FacilityLimits) Max() int {
	return l.InterimSite + l.RecoveryFacility
}

// CreateRecoveryFacility appends a blank facility entry with a fresh id. The
// incoming section must carry status Started. Fails with ErrSectionLocked
// while the section is still blocked on the waste description.
func CreateRecoveryFacility(current RecoveryFacilityDetail, value RecoveryFacilityDetail, limits FacilityLimits, ids IDGenerator) (string, RecoveryFacilityDetail, error) {
	if current.Status == SectionCannotStart {
		return "", current, ErrSectionLocked
	}
	if value.Status != SectionStarted {
		return "", current, ErrEntryNotStarted
	}
	if len(current.Values) >= limits.Max() {
		return "", current, ErrCollectionFull
	}
	id := ids.NewID()
	updated := current
	if updated.Status == SectionNotStarted {
		updated.Status = SectionStarted
	}
	updated.Values = append(append([]RecoveryFacility(nil), current.Values...), RecoveryFacility{ID: id})
	return id, updated, nil
}

// GetRecoveryFacility looks up a facility entry by id.
func GetRecoveryFacility(current RecoveryFacilityDetail, id string) (RecoveryFacility, error) {
	if current.Status == SectionNotStarted || current.Status == SectionCannotStart {
		return RecoveryFacility{}, ErrEntryNotFound
	}
	for _, f := range current.Values {
		if f.ID == id {
			return f, nil
		}
	}
	return RecoveryFacility{}, ErrEntryNotFound
}

// SetRecoveryFacility replaces the entry matching id with the entry of the
// same id in the incoming section. Sending status NotStarted resets the whole
// collection. Untouched entries keep their relative order.
func SetRecoveryFacility(current RecoveryFacilityDetail, id string, value RecoveryFacilityDetail) (RecoveryFacilityDetail, error) {
	if current.Status == SectionCannotStart {
		return current, ErrSectionLocked
	}
	if value.Status == SectionNotStarted {
		return RecoveryFacilityDetail{Status: SectionNotStarted}, nil
	}
	incomingIdx := facilityIndex(value.Values, id)
	existingIdx := facilityIndex(current.Values, id)
	if incomingIdx < 0 || existingIdx < 0 {
		return current, ErrEntryNotFound
	}
	updated := current
	updated.Status = value.Status
	updated.Values = append([]RecoveryFacility(nil), current.Values...)
	updated.Values[existingIdx] = value.Values[incomingIdx]
	return updated, nil
}

// DeleteRecoveryFacility removes the entry matching id. An emptied collection
// reverts to NotStarted.
func DeleteRecoveryFacility(current RecoveryFacilityDetail, id string) (RecoveryFacilityDetail, error) {
	idx := facilityIndex(current.Values, id)
	if idx < 0 || current.Status == SectionNotStarted || current.Status == SectionCannotStart {
		return current, ErrEntryNotFound
	}
	updated := current
	updated.Values = append([]RecoveryFacility(nil), current.Values[:idx]...)
	updated.Values = append(updated.Values, current.Values[idx+1:]...)
	if len(updated.Values) == 0 {
		updated.Values = nil
		updated.Status = SectionNotStarted
	}
	return updated, nil
}

func facilityIndex(values []RecoveryFacility, id string) int {
	for i, f := range values {
		if f.ID == id {
			return i
		}
	}
	return -1
}
