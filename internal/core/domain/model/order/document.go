package order

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrDocumentMetaIsNotConstructed indicates that a DocumentMeta was not
// created through the NewDocumentMeta constructor.
var ErrDocumentMetaIsNotConstructed = errors.New(
	"DocumentMeta must be created via NewDocumentMeta constructor",
)

// DocumentMeta describes the court documents being served: what they are and
// the case they belong to.
type DocumentMeta struct {
	title      string
	caseNumber string

	guard kernel.ConstructorGuard
}

// NewDocumentMeta creates document metadata. The title is required; the case
// number may be empty for pre-filing service.
func NewDocumentMeta(title, caseNumber string) (DocumentMeta, error) {
	if title == "" {
		return DocumentMeta{}, errs.NewValueIsRequiredError("title is required")
	}

	return DocumentMeta{
		title:      title,
		caseNumber: caseNumber,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Title returns the document title.
func (d DocumentMeta) Title() string {
	return d.title
}

// CaseNumber returns the court case number, empty if not yet filed.
func (d DocumentMeta) CaseNumber() string {
	return d.caseNumber
}

// IsEqual compares two document descriptors by value.
func (d DocumentMeta) IsEqual(other DocumentMeta) bool {
	return d.title == other.title && d.caseNumber == other.caseNumber
}

// Validate checks that the DocumentMeta was properly constructed.
func (d DocumentMeta) Validate() error {
	return d.guard.Validate(ErrDocumentMetaIsNotConstructed)
}
