package domain

// Section setters are pure: each takes the current draft by value, returns an
// updated snapshot and never touches storage. Every setter finishes by
// re-deriving the confirmation and declaration statuses, so editing any
// section immediately reflects whether the draft is ready to confirm.

// SetWasteDescription applies a waste-description edit, propagating resets to
// the carriers, recovery-facility and quantity sections.
func (d DraftSubmission) SetWasteDescription(value WasteDescription) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && value.WasteCode == nil {
		return d, ErrMissingSectionData
	}
	transition := ClassifyWasteCodeTransition(d.WasteDescription, value)
	change := ApplyWasteDescriptionChange(d.WasteDescription, d.Carriers, d.RecoveryFacilityDetail, value)
	d.WasteQuantity = applyQuantityRule(transition, d.WasteDescription, value, d.WasteQuantity)
	d.WasteDescription = change.WasteDescription
	d.Carriers = change.Carriers
	d.RecoveryFacilityDetail = change.RecoveryFacilityDetail
	return d.withDerivedStatuses(), nil
}

// SetWasteQuantity replaces the quantity section, retaining whichever of the
// estimate/actual variants the incoming payload does not carry.
func (d DraftSubmission) SetWasteQuantity(value WasteQuantity) (DraftSubmission, error) {
	if d.WasteQuantity.Status == SectionCannotStart {
		return d, ErrSectionLocked
	}
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && value.Value == nil {
		return d, ErrMissingSectionData
	}
	if value.Status == SectionNotStarted {
		d.WasteQuantity = WasteQuantity{Status: SectionNotStarted}
		return d.withDerivedStatuses(), nil
	}
	d.WasteQuantity = WasteQuantity{
		Status: value.Status,
		Value:  mergeQuantityValue(d.WasteQuantity.Value, value.Value),
	}
	return d.withDerivedStatuses(), nil
}

// SetExporterDetail replaces the exporter section.
func (d DraftSubmission) SetExporterDetail(value ExporterDetail) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && (value.Address == nil || value.Contact == nil) {
		return d, ErrMissingSectionData
	}
	d.ExporterDetail = value
	return d.withDerivedStatuses(), nil
}

// SetImporterDetail replaces the importer section.
func (d DraftSubmission) SetImporterDetail(value ImporterDetail) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && (value.Address == nil || value.Contact == nil) {
		return d, ErrMissingSectionData
	}
	d.ImporterDetail = value
	return d.withDerivedStatuses(), nil
}

// SetCollectionDate replaces the collection-date section. Both the estimate
// and the actual sub-record are retained across edits so toggling the type
// does not lose previously entered values. Day/month/year strings are not
// parsed here; validation happens when the draft is confirmed or declared.
func (d DraftSubmission) SetCollectionDate(value CollectionDate) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && value.Value == nil {
		return d, ErrMissingSectionData
	}
	if value.Status == SectionNotStarted {
		d.CollectionDate = CollectionDate{Status: SectionNotStarted}
		return d.withDerivedStatuses(), nil
	}
	d.CollectionDate = CollectionDate{
		Status: SectionComplete,
		Value:  mergeDateValue(d.CollectionDate.Value, value.Value),
	}
	return d.withDerivedStatuses(), nil
}

// SetCollectionDetail replaces the collection-detail section.
func (d DraftSubmission) SetCollectionDetail(value CollectionDetail) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && (value.Address == nil || value.Contact == nil) {
		return d, ErrMissingSectionData
	}
	d.CollectionDetail = value
	return d.withDerivedStatuses(), nil
}

// SetExitLocation replaces the UK exit-location section.
func (d DraftSubmission) SetExitLocation(value UKExitLocation) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionComplete); err != nil {
		return d, err
	}
	if value.Status == SectionComplete && value.ExitLocation == nil {
		return d, ErrMissingSectionData
	}
	if value.Status == SectionComplete && value.ExitLocation.Provided == ExitLocationYes && value.ExitLocation.Value == "" {
		return d, ErrMissingSectionData
	}
	d.UKExitLocation = value
	return d.withDerivedStatuses(), nil
}

// SetTransitCountries replaces the transit-countries section.
func (d DraftSubmission) SetTransitCountries(value TransitCountries) (DraftSubmission, error) {
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionStarted, SectionComplete); err != nil {
		return d, err
	}
	d.TransitCountries = value
	return d.withDerivedStatuses(), nil
}

// CreateCarrier appends a blank carrier entry and returns its id.
func (d DraftSubmission) CreateCarrier(value Carriers, maxCarriers int, ids IDGenerator) (string, DraftSubmission, error) {
	id, updated, err := CreateCarrier(d.Carriers, value, maxCarriers, ids)
	if err != nil {
		return "", d, err
	}
	d.Carriers = updated
	return id, d.withDerivedStatuses(), nil
}

// SetCarrier replaces one carrier entry (or resets the whole section).
func (d DraftSubmission) SetCarrier(id string, value Carriers) (DraftSubmission, error) {
	updated, err := SetCarrier(d.Carriers, id, value)
	if err != nil {
		return d, err
	}
	d.Carriers = updated
	return d.withDerivedStatuses(), nil
}

// DeleteCarrier removes one carrier entry.
func (d DraftSubmission) DeleteCarrier(id string) (DraftSubmission, error) {
	updated, err := DeleteCarrier(d.Carriers, id)
	if err != nil {
		return d, err
	}
	d.Carriers = updated
	return d.withDerivedStatuses(), nil
}

// CreateRecoveryFacility appends a blank facility entry and returns its id.
func (d DraftSubmission) CreateRecoveryFacility(value RecoveryFacilityDetail, limits FacilityLimits, ids IDGenerator) (string, DraftSubmission, error) {
	id, updated, err := CreateRecoveryFacility(d.RecoveryFacilityDetail, value, limits, ids)
	if err != nil {
		return "", d, err
	}
	d.RecoveryFacilityDetail = updated
	return id, d.withDerivedStatuses(), nil
}

// SetRecoveryFacility replaces one facility entry (or resets the section).
func (d DraftSubmission) SetRecoveryFacility(id string, value RecoveryFacilityDetail) (DraftSubmission, error) {
	updated, err := SetRecoveryFacility(d.RecoveryFacilityDetail, id, value)
	if err != nil {
		return d, err
	}
	d.RecoveryFacilityDetail = updated
	return d.withDerivedStatuses(), nil
}

// DeleteRecoveryFacility removes one facility entry.
func (d DraftSubmission) DeleteRecoveryFacility(id string) (DraftSubmission, error) {
	updated, err := DeleteRecoveryFacility(d.RecoveryFacilityDetail, id)
	if err != nil {
		return d, err
	}
	d.RecoveryFacilityDetail = updated
	return d.withDerivedStatuses(), nil
}

func validateSectionStatus(status SectionStatus, allowed ...SectionStatus) error {
	for _, s := range allowed {
		if status == s {
			return nil
		}
	}
	return ErrInvalidStatus
}
