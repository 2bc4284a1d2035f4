package domain

import "errors"

// Session errors
var (
	// ErrDraftNotFound indicates that no authoring session exists for the given id.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrSubmissionInProgress indicates a submit was requested while another
	// submission of the same draft has not finished.
	ErrSubmissionInProgress = errors.New("draft submission already in progress")

	// ErrDraftInvalid indicates the draft failed validation; the violations
	// are stored in the draft's error mapping.
	ErrDraftInvalid = errors.New("draft has validation errors")
)

// Input errors raised at the edge before a draft operation is applied.
var (
	// ErrInvalidStatus indicates an unknown product status value.
	ErrInvalidStatus = errors.New("invalid product status")

	// ErrInvalidMoney indicates a price field that is not a decimal number.
	ErrInvalidMoney = errors.New("invalid money amount")

	// ErrEmptyLanguageID indicates a translation keyed by an empty language id.
	ErrEmptyLanguageID = errors.New("language id cannot be empty")

	// ErrEmptyCurrencyID indicates a price keyed by an empty currency id.
	ErrEmptyCurrencyID = errors.New("currency id cannot be empty")

	// ErrTooManyVariants indicates attributes whose option combinations
	// exceed the number of variants a product may have.
	ErrTooManyVariants = errors.New("too many variant combinations")
)
