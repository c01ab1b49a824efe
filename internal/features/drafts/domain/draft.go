package domain

import (
	"strings"
	"time"
)

// SectionStatus tracks the lifecycle of one independently-edited section of a
// draft submission. Not every status is legal for every section: collection
// date only moves between NotStarted and Complete, while waste quantity and
// recovery facilities start locked at CannotStart until the waste description
// unlocks them.
type SectionStatus string

const (
	// SectionCannotStart means the section is blocked on another section.
	SectionCannotStart SectionStatus = "CannotStart"
	// SectionNotStarted means the section is unlocked but empty.
	SectionNotStarted SectionStatus = "NotStarted"
	// SectionStarted means the section holds partial data.
	SectionStarted SectionStatus = "Started"
	// SectionComplete means the section has been filled in and confirmed.
	SectionComplete SectionStatus = "Complete"
)

// MaxReferenceLength bounds the free-text customer reference.
const MaxReferenceLength = 20

// Address is a postal address shared by exporter, importer, carrier and
// facility records.
type Address struct {
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	TownCity     string `json:"townCity,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Country      string `json:"country,omitempty"`
}

// Contact is a named point of contact for an organisation.
type Contact struct {
	OrganisationName string `json:"organisationName,omitempty"`
	FullName         string `json:"fullName,omitempty"`
	Email            string `json:"emailAddress,omitempty"`
	Phone            string `json:"phoneNumber,omitempty"`
	Fax              string `json:"faxNumber,omitempty"`
}

// ExporterDetail holds the exporter's address and contact.
type ExporterDetail struct {
	Status  SectionStatus `json:"status"`
	Address *Address      `json:"exporterAddress,omitempty"`
	Contact *Contact      `json:"exporterContactDetails,omitempty"`
}

// ImporterDetail holds the importer's address and contact.
type ImporterDetail struct {
	Status  SectionStatus `json:"status"`
	Address *Address      `json:"importerAddressDetails,omitempty"`
	Contact *Contact      `json:"importerContactDetails,omitempty"`
}

// CollectionDetail holds the waste collection address and contact.
type CollectionDetail struct {
	Status  SectionStatus `json:"status"`
	Address *Address      `json:"address,omitempty"`
	Contact *Contact      `json:"contactDetails,omitempty"`
}

// ExitLocationProvided discriminates whether a UK exit point was given.
type ExitLocationProvided string

const (
	ExitLocationYes ExitLocationProvided = "Yes"
	ExitLocationNo  ExitLocationProvided = "No"
)

// ExitLocation is the optional point where the waste leaves the UK.
type ExitLocation struct {
	Provided ExitLocationProvided `json:"provided"`
	Value    string               `json:"value,omitempty"`
}

// UKExitLocation is the exit-location section. It only moves between
// NotStarted and Complete.
type UKExitLocation struct {
	Status       SectionStatus `json:"status"`
	ExitLocation *ExitLocation `json:"exitLocation,omitempty"`
}

// TransitCountries lists the countries the movement passes through.
type TransitCountries struct {
	Status SectionStatus `json:"status"`
	Values []string      `json:"values,omitempty"`
}

// SubmissionConfirmation records whether the user has checked their answers.
// Complete is only ever set by an explicit confirmation action; every section
// write re-derives whether confirmation is allowed to start.
type SubmissionConfirmation struct {
	Status       SectionStatus `json:"status"`
	Confirmation bool          `json:"confirmation,omitempty"`
}

// DeclarationData is stamped onto the draft when it is declared.
type DeclarationData struct {
	DeclarationTimestamp time.Time `json:"declarationTimestamp"`
	TransactionID        string    `json:"transactionId"`
}

// SubmissionDeclaration is the final sign-off section. Completing it converts
// the draft into an immutable submission.
type SubmissionDeclaration struct {
	Status SectionStatus    `json:"status"`
	Values *DeclarationData `json:"values,omitempty"`
}

// SubmissionStateStatus is the overall lifecycle state of a draft or
// submission record.
type SubmissionStateStatus string

const (
	StateInProgress             SubmissionStateStatus = "InProgress"
	StateDeleted                SubmissionStateStatus = "Deleted"
	StateCancelled              SubmissionStateStatus = "Cancelled"
	StateSubmittedWithEstimates SubmissionStateStatus = "SubmittedWithEstimates"
	StateSubmittedWithActuals   SubmissionStateStatus = "SubmittedWithActuals"
	StateUpdatedWithActuals     SubmissionStateStatus = "UpdatedWithActuals"
)

// CancellationType discriminates why a submission was cancelled.
type CancellationType struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

// SubmissionState tags the record with its lifecycle state and when it last
// changed.
type SubmissionState struct {
	Status           SubmissionStateStatus `json:"status"`
	Timestamp        time.Time             `json:"timestamp"`
	CancellationType *CancellationType     `json:"cancellationType,omitempty"`
}

// DraftSubmission is the root aggregate for one cross-border waste export in
// progress. Each field carrying a Status is a section with its own lifecycle;
// the engine keeps the cross-section invariants whenever one section changes.
type DraftSubmission struct {
	ID                     string                 `json:"id"`
	Reference              string                 `json:"reference"`
	WasteDescription       WasteDescription       `json:"wasteDescription"`
	WasteQuantity          WasteQuantity          `json:"wasteQuantity"`
	ExporterDetail         ExporterDetail         `json:"exporterDetail"`
	ImporterDetail         ImporterDetail         `json:"importerDetail"`
	CollectionDate         CollectionDate         `json:"collectionDate"`
	Carriers               Carriers               `json:"carriers"`
	CollectionDetail       CollectionDetail       `json:"collectionDetail"`
	UKExitLocation         UKExitLocation         `json:"ukExitLocation"`
	TransitCountries       TransitCountries       `json:"transitCountries"`
	RecoveryFacilityDetail RecoveryFacilityDetail `json:"recoveryFacilityDetail"`
	SubmissionConfirmation SubmissionConfirmation `json:"submissionConfirmation"`
	SubmissionDeclaration  SubmissionDeclaration  `json:"submissionDeclaration"`
	SubmissionState        SubmissionState        `json:"submissionState"`
}

// NewDraft creates an empty draft with the given id and customer reference.
// Waste quantity, recovery facilities, confirmation and declaration start
// locked; everything else starts empty.
func NewDraft(id, reference string, now time.Time) (DraftSubmission, error) {
	if err := ValidateReference(reference); err != nil {
		return DraftSubmission{}, err
	}
	return DraftSubmission{
		ID:                     id,
		Reference:              reference,
		WasteDescription:       WasteDescription{Status: SectionNotStarted},
		WasteQuantity:          WasteQuantity{Status: SectionCannotStart},
		ExporterDetail:         ExporterDetail{Status: SectionNotStarted},
		ImporterDetail:         ImporterDetail{Status: SectionNotStarted},
		CollectionDate:         CollectionDate{Status: SectionNotStarted},
		Carriers:               Carriers{Status: SectionNotStarted, Transport: true},
		CollectionDetail:       CollectionDetail{Status: SectionNotStarted},
		UKExitLocation:         UKExitLocation{Status: SectionNotStarted},
		TransitCountries:       TransitCountries{Status: SectionNotStarted},
		RecoveryFacilityDetail: RecoveryFacilityDetail{Status: SectionCannotStart},
		SubmissionConfirmation: SubmissionConfirmation{Status: SectionCannotStart},
		SubmissionDeclaration:  SubmissionDeclaration{Status: SectionCannotStart},
		SubmissionState:        SubmissionState{Status: StateInProgress, Timestamp: now},
	}, nil
}

// ValidateReference checks the customer reference bounds.
func ValidateReference(reference string) error {
	trimmed := strings.TrimSpace(reference)
	if trimmed == "" {
		return ErrEmptyReference
	}
	if len(trimmed) > MaxReferenceLength {
		return ErrReferenceTooLong
	}
	return nil
}
