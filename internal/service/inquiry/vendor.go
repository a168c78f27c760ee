package inquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// WorkQueue returns every inquiry awaiting action by the vendor: status
// exactly 'submitted'. An empty queue is an empty slice, not an error; the
// tool boundary renders it as its own sentinel.
func (s *Service) WorkQueue(ctx context.Context, vendorID uuid.UUID) ([]domain.VendorTask, error) {
	if vendorID == uuid.Nil {
		return nil, domain.NewValidationError("vendor_id", "required")
	}

	tasks, err := s.inquiries.ListSubmittedByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list work queue: %w", err)
	}

	return tasks, nil
}

// UpdateVendorResponse fully replaces the vendor response document and
// optionally extends the narrative summary. With MarkReady the inquiry is
// promoted to 'responded'; without it the vendor is only saving work in
// progress and the status is untouched.
func (s *Service) UpdateVendorResponse(ctx context.Context, input VendorResponseInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.inquiries.GetByID(ctx, input.InquiryID)
	if err != nil {
		return fmt.Errorf("get inquiry: %w", err)
	}

	if input.Summary != nil {
		if err := s.checkSummary(current.Summary, *input.Summary); err != nil {
			return err
		}
	}

	applied, err := s.inquiries.UpdateVendorResponse(ctx, input.InquiryID, input.Document, input.Summary, input.MarkReady)
	if err != nil {
		return fmt.Errorf("update vendor response: %w", err)
	}
	if !applied {
		if input.MarkReady {
			return s.wrongStatus(ctx, input.InquiryID, domain.AllowedFrom(domain.StatusResponded))
		}
		return fmt.Errorf("inquiry %s: %w", input.InquiryID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "vendor response updated",
		slog.String("inquiry_id", input.InquiryID.String()),
		slog.Bool("marked_ready", input.MarkReady),
	)

	return nil
}
