package inquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// FullState returns the complete negotiation state, including both documents
// and the cumulative summary, so an agent can read the story so far before
// composing its next update.
func (s *Service) FullState(ctx context.Context, inquiryID uuid.UUID) (*domain.FullState, error) {
	if inquiryID == uuid.Nil {
		return nil, domain.NewValidationError("inquiry_id", "required")
	}

	state, err := s.inquiries.GetFullState(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("get full state: %w", err)
	}

	return state, nil
}
