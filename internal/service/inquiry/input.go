package inquiry

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// CreateInput holds the parameters for creating an inquiry.
type CreateInput struct {
	BuyerID         uuid.UUID
	DatasetID       uuid.UUID
	ConversationID  uuid.UUID
	InitialDocument domain.Document
	InitialSummary  string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.BuyerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "buyer_id", Message: "required"})
	}
	if i.DatasetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dataset_id", Message: "required"})
	}
	if i.ConversationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "required"})
	}
	if i.InitialDocument == nil {
		errs = append(errs, domain.FieldError{Field: "initial_document", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBuyerInput holds the parameters for replacing the buyer document.
type UpdateBuyerInput struct {
	InquiryID uuid.UUID
	Document  domain.Document
	// Summary, when non-nil, must extend the stored summary.
	Summary *string
}

// Validate checks all fields and collects all errors.
func (i UpdateBuyerInput) Validate() error {
	var errs []domain.FieldError

	if i.InquiryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "inquiry_id", Message: "required"})
	}
	if i.Document == nil {
		errs = append(errs, domain.FieldError{Field: "new_document", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VendorResponseInput holds the parameters for replacing the vendor
// response document.
type VendorResponseInput struct {
	InquiryID uuid.UUID
	Document  domain.Document
	Summary   *string
	// MarkReady promotes the inquiry to 'responded', signalling the buyer
	// that the response is final.
	MarkReady bool
}

// Validate checks all fields and collects all errors.
func (i VendorResponseInput) Validate() error {
	var errs []domain.FieldError

	if i.InquiryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "inquiry_id", Message: "required"})
	}
	if i.Document == nil {
		errs = append(errs, domain.FieldError{Field: "new_document", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AcceptInput holds the parameters for accepting the vendor's response.
type AcceptInput struct {
	InquiryID  uuid.UUID
	FinalNotes string
}

// Validate checks all fields and collects all errors.
func (i AcceptInput) Validate() error {
	if i.InquiryID == uuid.Nil {
		return domain.NewValidationError("inquiry_id", "required")
	}
	return nil
}

// RejectInput holds the parameters for rejecting the vendor's response.
type RejectInput struct {
	InquiryID uuid.UUID
	Reason    string
}

// Validate checks all fields and collects all errors.
// The rejection reason is mandatory: the vendor needs it as feedback.
func (i RejectInput) Validate() error {
	var errs []domain.FieldError

	if i.InquiryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "inquiry_id", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "rejection_reason", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
