package domain

import (
	"fmt"
	"strings"
	"time"
)

// Cancellation reasons accepted once a draft has been submitted.
const (
	CancellationChangeOfFacility = "ChangeOfRecoveryFacilityOrLaboratory"
	CancellationNoLongerExport   = "NoLongerExportingWaste"
	CancellationOther            = "Other"
)

// withDerivedStatuses recomputes the confirmation and declaration statuses.
// It runs after every section write: editing anything drops a previously
// given confirmation, so Complete is never carried over here — it is only
// set again by an explicit ConfirmSubmission call.
func (d DraftSubmission) withDerivedStatuses() DraftSubmission {
	d.SubmissionConfirmation = SubmissionConfirmation{Status: deriveConfirmationStatus(d)}
	d.SubmissionDeclaration = SubmissionDeclaration{Status: deriveDeclarationStatus(d)}
	return d
}

// deriveConfirmationStatus reports whether checking answers may begin:
// NotStarted iff every section other than id, reference, confirmation,
// declaration and state is Complete; otherwise CannotStart.
func deriveConfirmationStatus(d DraftSubmission) SectionStatus {
	sections := []SectionStatus{
		d.WasteDescription.Status,
		d.WasteQuantity.Status,
		d.ExporterDetail.Status,
		d.ImporterDetail.Status,
		d.CollectionDate.Status,
		d.Carriers.Status,
		d.CollectionDetail.Status,
		d.UKExitLocation.Status,
		d.TransitCountries.Status,
		d.RecoveryFacilityDetail.Status,
	}
	for _, s := range sections {
		if s != SectionComplete {
			return SectionCannotStart
		}
	}
	return SectionNotStarted
}

// deriveDeclarationStatus gates the final sign-off on a completed
// confirmation.
func deriveDeclarationStatus(d DraftSubmission) SectionStatus {
	if d.SubmissionConfirmation.Status == SectionComplete {
		return SectionNotStarted
	}
	return SectionCannotStart
}

// ConfirmSubmission applies the explicit check-your-answers action. An
// unparsable collection date forces the date section back to NotStarted and
// the call fails, leaving the draft in a valid partially-reset state —
// callers must persist the returned draft even on error and re-fetch.
func (d DraftSubmission) ConfirmSubmission(value SubmissionConfirmation) (DraftSubmission, error) {
	if d.SubmissionConfirmation.Status == SectionCannotStart {
		return d, ErrConfirmationLocked
	}
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionComplete); err != nil {
		return d, err
	}
	if !collectionDateValid(d.CollectionDate) {
		d.CollectionDate = CollectionDate{Status: SectionNotStarted}
		return d.withDerivedStatuses(), ErrInvalidDate
	}
	d.SubmissionConfirmation = value
	d.SubmissionDeclaration = SubmissionDeclaration{Status: deriveDeclarationStatus(d)}
	return d, nil
}

// DeclareSubmission applies the explicit declaration action. Completing the
// declaration is terminal: it stamps the transaction id, classifies the final
// submission state and reports submitted=true so the caller migrates the
// record into the immutable submission history. The collection date is
// re-validated with the same reset-and-fail behaviour as confirmation.
func (d DraftSubmission) DeclareSubmission(value SubmissionDeclaration, now time.Time) (DraftSubmission, bool, error) {
	if d.SubmissionDeclaration.Status == SectionCannotStart {
		return d, false, ErrDeclarationLocked
	}
	if err := validateSectionStatus(value.Status, SectionNotStarted, SectionComplete); err != nil {
		return d, false, err
	}
	if !collectionDateValid(d.CollectionDate) {
		d.CollectionDate = CollectionDate{Status: SectionNotStarted}
		return d.withDerivedStatuses(), false, ErrInvalidDate
	}
	if value.Status == SectionNotStarted {
		d.SubmissionDeclaration = SubmissionDeclaration{Status: SectionNotStarted}
		return d, false, nil
	}
	if d.SubmissionDeclaration.Status != SectionNotStarted {
		return d, false, ErrAlreadyDeclared
	}
	d.SubmissionDeclaration = SubmissionDeclaration{
		Status: SectionComplete,
		Values: &DeclarationData{
			DeclarationTimestamp: now,
			TransactionID:        TransactionID(now, d.ID),
		},
	}
	state := StateSubmittedWithEstimates
	if d.hasActuals() {
		state = StateSubmittedWithActuals
	}
	d.SubmissionState = SubmissionState{Status: state, Timestamp: now}
	return d, true, nil
}

// TransactionID builds the regulator-facing reference: two-digit year,
// zero-padded month, underscore, then the first eight characters of the
// draft id uppercased (e.g. 2405_A148B186).
func TransactionID(now time.Time, draftID string) string {
	fragment := draftID
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	return fmt.Sprintf("%02d%02d_%s", now.Year()%100, int(now.Month()), strings.ToUpper(fragment))
}

// hasActuals reports whether both the collection date and the waste quantity
// are complete with their actual variant selected.
func (d DraftSubmission) hasActuals() bool {
	dateActual := d.CollectionDate.Status == SectionComplete &&
		d.CollectionDate.Value != nil &&
		d.CollectionDate.Value.Type == DateActual
	quantityActual := d.WasteQuantity.Status == SectionComplete &&
		d.WasteQuantity.Value != nil &&
		d.WasteQuantity.Value.Type == QuantityActualData
	return dateActual && quantityActual
}

func collectionDateValid(date CollectionDate) bool {
	if date.Status != SectionComplete || date.Value == nil {
		return false
	}
	return date.Value.selected().parsable()
}

// MarkDeleted tombstones an in-progress draft. The record stays stored but
// disappears from listings.
func (d DraftSubmission) MarkDeleted(now time.Time) (DraftSubmission, error) {
	if d.SubmissionState.Status != StateInProgress {
		return d, ErrDraftNotFound
	}
	d.SubmissionState = SubmissionState{Status: StateDeleted, Timestamp: now}
	return d, nil
}

// CancelSubmission cancels a submitted record with a reason. Only reachable
// from the submitted states; drafts and already-cancelled records reject it.
func (d DraftSubmission) CancelSubmission(cancellation CancellationType, now time.Time) (DraftSubmission, error) {
	switch d.SubmissionState.Status {
	case StateSubmittedWithEstimates, StateSubmittedWithActuals, StateUpdatedWithActuals:
	default:
		return d, fmt.Errorf("%w: submission cannot be cancelled from state %s", ErrBadRequest, d.SubmissionState.Status)
	}
	switch cancellation.Type {
	case CancellationChangeOfFacility, CancellationNoLongerExport:
	case CancellationOther:
		if strings.TrimSpace(cancellation.Reason) == "" {
			return d, fmt.Errorf("%w: cancellation reason required", ErrBadRequest)
		}
	default:
		return d, fmt.Errorf("%w: unknown cancellation type %q", ErrBadRequest, cancellation.Type)
	}
	d.SubmissionState = SubmissionState{
		Status:           StateCancelled,
		Timestamp:        now,
		CancellationType: &cancellation,
	}
	return d, nil
}

// UpdateSubmissionCollectionDate replaces the collection date on a submitted
// record. Moving the date to its actual variant while the record still sits
// at SubmittedWithEstimates flips the state to UpdatedWithActuals; the
// quantity field is checked independently when it is written.
func (d DraftSubmission) UpdateSubmissionCollectionDate(value CollectionDateValue, now time.Time) (DraftSubmission, error) {
	merged := mergeDateValue(d.CollectionDate.Value, &value)
	if !merged.selected().parsable() {
		return d, ErrInvalidDate
	}
	d.CollectionDate = CollectionDate{Status: SectionComplete, Value: merged}
	if d.SubmissionState.Status == StateSubmittedWithEstimates && value.Type == DateActual {
		d.SubmissionState = SubmissionState{Status: StateUpdatedWithActuals, Timestamp: now}
	}
	return d, nil
}

// UpdateSubmissionWasteQuantity replaces the waste quantity on a submitted
// record, with the same estimate-to-actual state flip as the date field.
func (d DraftSubmission) UpdateSubmissionWasteQuantity(value WasteQuantityValue, now time.Time) (DraftSubmission, error) {
	merged := mergeQuantityValue(d.WasteQuantity.Value, &value)
	d.WasteQuantity = WasteQuantity{Status: SectionComplete, Value: merged}
	if d.SubmissionState.Status == StateSubmittedWithEstimates && value.Type == QuantityActualData {
		d.SubmissionState = SubmissionState{Status: StateUpdatedWithActuals, Timestamp: now}
	}
	return d, nil
}
