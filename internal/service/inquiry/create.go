package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// Create initializes a new inquiry and submits it to the vendor.
//
// The dataset lookup (which resolves the denormalized vendor_id) and the
// insert run in one transaction, so a concurrently deleted dataset cannot
// leave a dangling vendor reference. The new inquiry starts in 'submitted':
// creation and submission are a single step.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Inquiry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(input.InitialSummary)
	if len(summary) > s.limits.MaxSummaryChars {
		return nil, domain.NewValidationError("initial_summary",
			fmt.Sprintf("max %d characters", s.limits.MaxSummaryChars))
	}

	var created *domain.Inquiry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ds, err := s.datasets.GetByID(ctx, input.DatasetID)
		if err != nil {
			return fmt.Errorf("resolve dataset: %w", err)
		}

		now := time.Now().UTC()
		created, err = s.inquiries.Create(ctx, &domain.Inquiry{
			ID:             uuid.New(),
			BuyerID:        input.BuyerID,
			DatasetID:      input.DatasetID,
			VendorID:       ds.VendorID,
			ConversationID: input.ConversationID,
			BuyerInquiry:   input.InitialDocument,
			Summary:        summary,
			Status:         domain.StatusSubmitted,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "inquiry created",
		slog.String("inquiry_id", created.ID.String()),
		slog.String("buyer_id", created.BuyerID.String()),
		slog.String("vendor_id", created.VendorID.String()),
		slog.String("dataset_id", created.DatasetID.String()),
	)

	return created, nil
}
