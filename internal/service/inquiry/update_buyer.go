package inquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// UpdateBuyerDocument fully replaces the buyer document and optionally
// extends the narrative summary.
//
// The read and the write are two separate store calls: the summary guard
// needs the current text first. Two concurrent buyer updates therefore race
// last-writer-wins. Known limitation; callers must serialize per inquiry
// if they care.
func (s *Service) UpdateBuyerDocument(ctx context.Context, input UpdateBuyerInput) error {
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

	applied, err := s.inquiries.UpdateBuyerDocument(ctx, input.InquiryID, input.Document, input.Summary)
	if err != nil {
		return fmt.Errorf("update buyer document: %w", err)
	}
	if !applied {
		// The row vanished between the read and the write.
		return fmt.Errorf("inquiry %s: %w", input.InquiryID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "buyer document updated",
		slog.String("inquiry_id", input.InquiryID.String()),
		slog.Bool("summary_extended", input.Summary != nil),
	)

	return nil
}
