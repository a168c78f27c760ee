package inquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// Resubmit flags a responded inquiry back to the vendor after buyer edits:
// 'responded' -> 'submitted'. The transition is a conditional update, so of
// two concurrent resubmissions at most one succeeds; the loser gets a
// StatusError (or ErrNotFound if the inquiry never existed).
//
// Creation already submits an inquiry, so there is no separate first-submit
// transition; Resubmit is the only way back onto the vendor's queue.
func (s *Service) Resubmit(ctx context.Context, inquiryID uuid.UUID) error {
	if inquiryID == uuid.Nil {
		return domain.NewValidationError("inquiry_id", "required")
	}

	from := domain.AllowedFrom(domain.StatusSubmitted)
	applied, err := s.inquiries.SetStatus(ctx, inquiryID, from, domain.StatusSubmitted, nil)
	if err != nil {
		return fmt.Errorf("resubmit inquiry: %w", err)
	}
	if !applied {
		return s.wrongStatus(ctx, inquiryID, from)
	}

	s.log.InfoContext(ctx, "inquiry resubmitted",
		slog.String("inquiry_id", inquiryID.String()),
	)

	return nil
}
