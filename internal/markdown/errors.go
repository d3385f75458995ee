package markdown

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	malformedDocumentCode = "MARKDOWN_MALFORMED_DOCUMENT"
	validationFailedCode  = "MARKDOWN_VALIDATION_FAILED"
	dateParseFailedCode   = "MARKDOWN_DATE_PARSE_FAILED"
)

var (
	// ErrMalformedDocument indicates a file without a front matter block
	// (or with an unterminated one).
	ErrMalformedDocument = errors.New("markdown: missing front matter block")
	// ErrMissingField indicates a required front matter key is absent.
	ErrMissingField = errors.New("markdown: required front matter field missing")
	// ErrDateUnparsable indicates the front matter date did not match any
	// accepted layout.
	ErrDateUnparsable = errors.New("markdown: front matter date unparsable")
)

// malformedDocumentError tags a missing/broken front matter block with the
// offending file so build output points at the document to fix.
func malformedDocumentError(path string, cause error) error {
	err := fmt.Errorf("document %s has no parseable front matter block: %w", path, errors.Join(ErrMalformedDocument, cause))
	return goerrors.Wrap(err, goerrors.CategoryValidation, "malformed document").
		WithTextCode(malformedDocumentCode)
}

// validationError tags missing required front matter keys, naming each key.
func validationError(path string, cause error) error {
	err := fmt.Errorf("document %s failed front matter validation: %w", path, cause)
	return goerrors.Wrap(err, goerrors.CategoryValidation, "front matter validation failed").
		WithTextCode(validationFailedCode)
}

// dateParseError tags an unparsable date value with file and raw value.
func dateParseError(path, value string, cause error) error {
	err := fmt.Errorf("document %s has unparsable date %q: %w", path, value, errors.Join(ErrDateUnparsable, cause))
	return goerrors.Wrap(err, goerrors.CategoryValidation, "front matter date parse failed").
		WithTextCode(dateParseFailedCode)
}
