package inquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// Accept finalizes the deal: 'responded' -> 'accepted' (terminal).
//
// The summary note is composed server-side and written in the same guarded
// UPDATE as the status change, so the append-only contract cannot be broken
// here. The read of the current summary and the guarded write are separate
// store calls; a concurrent edit between them is lost, which is acceptable
// because both ends are monotonic appends.
func (s *Service) Accept(ctx context.Context, input AcceptInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.inquiries.GetByID(ctx, input.InquiryID)
	if err != nil {
		return fmt.Errorf("get inquiry: %w", err)
	}

	newSummary := current.Summary + domain.AcceptanceNote(input.FinalNotes)
	from := domain.AllowedFrom(domain.StatusAccepted)

	applied, err := s.inquiries.SetStatus(ctx, input.InquiryID, from, domain.StatusAccepted, &newSummary)
	if err != nil {
		return fmt.Errorf("accept inquiry: %w", err)
	}
	if !applied {
		return s.wrongStatus(ctx, input.InquiryID, from)
	}

	s.log.InfoContext(ctx, "inquiry accepted",
		slog.String("inquiry_id", input.InquiryID.String()),
	)

	return nil
}

// Reject closes the deal as lost: 'responded' -> 'rejected' (terminal).
// The rejection reason is mandatory and lands in the summary as vendor
// feedback.
func (s *Service) Reject(ctx context.Context, input RejectInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.inquiries.GetByID(ctx, input.InquiryID)
	if err != nil {
		return fmt.Errorf("get inquiry: %w", err)
	}

	newSummary := current.Summary + domain.RejectionNote(input.Reason)
	from := domain.AllowedFrom(domain.StatusRejected)

	applied, err := s.inquiries.SetStatus(ctx, input.InquiryID, from, domain.StatusRejected, &newSummary)
	if err != nil {
		return fmt.Errorf("reject inquiry: %w", err)
	}
	if !applied {
		return s.wrongStatus(ctx, input.InquiryID, from)
	}

	s.log.InfoContext(ctx, "inquiry rejected",
		slog.String("inquiry_id", input.InquiryID.String()),
	)

	return nil
}
