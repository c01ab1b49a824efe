package domain

// WasteDescriptionChange is the outcome of applying a waste-description edit
// to its dependent sections.
type WasteDescriptionChange struct {
	WasteDescription       WasteDescription
	Carriers               Carriers
	RecoveryFacilityDetail RecoveryFacilityDetail
}

// ApplyWasteDescriptionChange computes how editing the waste description
// affects the carriers and recovery-facility sections. Carriers and
// facilities collect data that is only valid for one regulatory pathway, so
// any category change invalidates them outright, while a same-category code
// change keeps their data but demotes them from Complete to Started so the
// user has to re-confirm.
func ApplyWasteDescriptionChange(current WasteDescription, carriers Carriers, facilities RecoveryFacilityDetail, next WasteDescription) WasteDescriptionChange {
	switch ClassifyWasteCodeTransition(current, next) {
	case TransitionBulkToSmall:
		return WasteDescriptionChange{
			WasteDescription:       clearDependentFields(next),
			Carriers:               Carriers{Status: SectionNotStarted, Transport: false},
			RecoveryFacilityDetail: RecoveryFacilityDetail{Status: SectionNotStarted},
		}
	case TransitionSmallToBulk, TransitionBulkDifferentCategory:
		return WasteDescriptionChange{
			WasteDescription:       clearDependentFields(next),
			Carriers:               Carriers{Status: SectionNotStarted, Transport: true},
			RecoveryFacilityDetail: RecoveryFacilityDetail{Status: SectionNotStarted},
		}
	case TransitionBulkSameCategory:
		return WasteDescriptionChange{
			WasteDescription:       clearDependentFields(next),
			Carriers:               demoteCarriers(carriers),
			RecoveryFacilityDetail: demoteFacilities(facilities),
		}
	default:
		return WasteDescriptionChange{
			WasteDescription:       next,
			Carriers:               alignTransport(carriers, current, next),
			RecoveryFacilityDetail: unlockFacilities(facilities, current, next),
		}
	}
}

// clearDependentFields drops the codes and free text that belonged to the
// previous waste code. A Complete payload carries freshly supplied values and
// is kept as-is.
func clearDependentFields(next WasteDescription) WasteDescription {
	if next.Status != SectionStarted {
		return next
	}
	next.EWCCodes = nil
	next.NationalCode = ""
	next.Description = ""
	return next
}

// demoteCarriers keeps the carrier data but forces re-confirmation after a
// same-category code change.
func demoteCarriers(carriers Carriers) Carriers {
	if carriers.Status == SectionStarted || carriers.Status == SectionComplete {
		carriers.Status = SectionStarted
	}
	return carriers
}

func demoteFacilities(facilities RecoveryFacilityDetail) RecoveryFacilityDetail {
	if facilities.Status == SectionStarted || facilities.Status == SectionComplete {
		facilities.Status = SectionStarted
	}
	return facilities
}

// alignTransport keeps the carriers.Transport invariant when a waste code is
// supplied for the first time: transport detail is skipped exactly when the
// waste is small (NotApplicable).
func alignTransport(carriers Carriers, current, next WasteDescription) Carriers {
	if codeNewlySupplied(current, next) {
		carriers.Transport = next.WasteCode.IsBulk()
	}
	return carriers
}

// unlockFacilities promotes the facility section out of CannotStart once a
// waste code has been supplied.
func unlockFacilities(facilities RecoveryFacilityDetail, current, next WasteDescription) RecoveryFacilityDetail {
	if facilities.Status == SectionCannotStart && codeNewlySupplied(current, next) {
		facilities.Status = SectionNotStarted
	}
	return facilities
}

// applyQuantityRule is the waste-quantity leg of the same dispatch: category
// changes invalidate the quantity (units differ between regimes), a
// same-category code change demotes it to Started keeping its value, and a
// first-time code unlocks it.
func applyQuantityRule(transition WasteCodeTransition, current, next WasteDescription, quantity WasteQuantity) WasteQuantity {
	switch transition {
	case TransitionBulkToSmall, TransitionSmallToBulk, TransitionBulkDifferentCategory:
		return WasteQuantity{Status: SectionNotStarted}
	case TransitionBulkSameCategory:
		if quantity.Status == SectionComplete {
			quantity.Status = SectionStarted
		}
		return quantity
	default:
		if quantity.Status == SectionCannotStart && codeNewlySupplied(current, next) {
			quantity.Status = SectionNotStarted
		}
		return quantity
	}
}

func codeNewlySupplied(current, next WasteDescription) bool {
	return current.WasteCode == nil && next.WasteCode != nil
}
