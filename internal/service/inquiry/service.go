// Package inquiry implements the negotiation workflow use-cases on top of
// the inquiry and dataset repositories.
package inquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// DefaultMaxSummaryChars bounds the narrative summary. The summary only
// ever grows, so an unbounded field would let a chatty agent inflate rows
// forever.
const DefaultMaxSummaryChars = 20000

type inquiryRepo interface {
	Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	GetFullState(ctx context.Context, id uuid.UUID) (*domain.FullState, error)
	ListSubmittedByVendor(ctx context.Context, vendorID uuid.UUID) ([]domain.VendorTask, error)
	UpdateBuyerDocument(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string) (bool, error)
	UpdateVendorResponse(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string, promote bool) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, from []domain.InquiryStatus, to domain.InquiryStatus, summary *string) (bool, error)
}

type datasetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits holds tunable bounds, wired from configuration.
type Limits struct {
	MaxSummaryChars int
}

// Service provides the inquiry negotiation operations.
type Service struct {
	inquiries inquiryRepo
	datasets  datasetRepo
	tx        txManager
	limits    Limits
	log       *slog.Logger
}

// NewService creates a new inquiry service.
func NewService(
	log *slog.Logger,
	inquiries inquiryRepo,
	datasets datasetRepo,
	tx txManager,
	limits Limits,
) *Service {
	if limits.MaxSummaryChars <= 0 {
		limits.MaxSummaryChars = DefaultMaxSummaryChars
	}
	return &Service{
		inquiries: inquiries,
		datasets:  datasets,
		tx:        tx,
		limits:    limits,
		log:       log.With("service", "inquiry"),
	}
}

// checkSummary validates an agent-supplied summary against the append-only
// contract and the configured size bound.
func (s *Service) checkSummary(existing, proposed string) error {
	if len(proposed) > s.limits.MaxSummaryChars {
		return domain.NewValidationError("updated_summary",
			fmt.Sprintf("max %d characters", s.limits.MaxSummaryChars))
	}
	return domain.ValidateSummaryExtension(existing, proposed)
}

// wrongStatus disambiguates a failed conditional update: a follow-up read
// separates "no such inquiry" from "inquiry exists but in the wrong status".
// The extra round trip buys the calling agent an exact error to act on.
func (s *Service) wrongStatus(ctx context.Context, id uuid.UUID, required []domain.InquiryStatus) error {
	current, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return &domain.StatusError{Current: current.Status, Required: required}
}
