package domain

import (
	"errors"
	"fmt"
)

// The engine reports failures against three kinds. Handlers match on the
// kind with errors.Is to pick an HTTP status; the specific sentinels carry
// the human-readable cause.
var (
	// ErrBadRequest covers invalid input shapes, status-transition misuse,
	// oversized collections and invalid collection dates.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound covers missing drafts, carriers and facilities, and
	// sections that are not yet reachable.
	ErrNotFound = errors.New("not found")
	// ErrConflict is reserved for collaborators with naming constraints; the
	// engine itself never produces it.
	ErrConflict = errors.New("conflict")
)

var (
	ErrEmptyReference     = fmt.Errorf("%w: customer reference must not be empty", ErrBadRequest)
	ErrReferenceTooLong   = fmt.Errorf("%w: customer reference exceeds %d characters", ErrBadRequest, MaxReferenceLength)
	ErrInvalidStatus      = fmt.Errorf("%w: status not allowed for this section", ErrBadRequest)
	ErrMissingSectionData = fmt.Errorf("%w: section data required for the requested status", ErrBadRequest)
	ErrEntryNotStarted    = fmt.Errorf("%w: new entries must have status Started", ErrBadRequest)
	ErrCollectionFull     = fmt.Errorf("%w: collection entry limit reached", ErrBadRequest)
	ErrInvalidDate        = fmt.Errorf("%w: collection date is invalid", ErrBadRequest)
	ErrConfirmationLocked = fmt.Errorf("%w: submission confirmation cannot start yet", ErrBadRequest)
	ErrDeclarationLocked  = fmt.Errorf("%w: submission declaration cannot start yet", ErrBadRequest)
	ErrAlreadyDeclared    = fmt.Errorf("%w: submission declaration is already complete", ErrBadRequest)

	ErrDraftNotFound      = fmt.Errorf("%w: draft submission", ErrNotFound)
	ErrSubmissionNotFound = fmt.Errorf("%w: submission", ErrNotFound)
	ErrEntryNotFound      = fmt.Errorf("%w: collection entry", ErrNotFound)
	ErrSectionLocked      = fmt.Errorf("%w: section cannot be accessed yet", ErrNotFound)
)
