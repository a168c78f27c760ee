package inquiry

import (
	"context"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// Hand-rolled mocks for the service's consumer-side interfaces. A nil func
// field means the test does not expect that call; invoking it panics.

type inquiryRepoMock struct {
	CreateFunc                func(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	GetFullStateFunc          func(ctx context.Context, id uuid.UUID) (*domain.FullState, error)
	ListSubmittedByVendorFunc func(ctx context.Context, vendorID uuid.UUID) ([]domain.VendorTask, error)
	UpdateBuyerDocumentFunc   func(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string) (bool, error)
	UpdateVendorResponseFunc  func(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string, promote bool) (bool, error)
	SetStatusFunc             func(ctx context.Context, id uuid.UUID, from []domain.InquiryStatus, to domain.InquiryStatus, summary *string) (bool, error)

	createCalls               int
	getByIDCalls              int
	getFullStateCalls         int
	listSubmittedCalls        int
	updateBuyerDocumentCalls  int
	updateVendorResponseCalls int
	setStatusCalls            int
}

func (m *inquiryRepoMock) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	m.createCalls++
	if m.CreateFunc == nil {
		panic("unexpected call to Create")
	}
	return m.CreateFunc(ctx, inq)
}

func (m *inquiryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	m.getByIDCalls++
	if m.GetByIDFunc == nil {
		panic("unexpected call to GetByID")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *inquiryRepoMock) GetFullState(ctx context.Context, id uuid.UUID) (*domain.FullState, error) {
	m.getFullStateCalls++
	if m.GetFullStateFunc == nil {
		panic("unexpected call to GetFullState")
	}
	return m.GetFullStateFunc(ctx, id)
}

func (m *inquiryRepoMock) ListSubmittedByVendor(ctx context.Context, vendorID uuid.UUID) ([]domain.VendorTask, error) {
	m.listSubmittedCalls++
	if m.ListSubmittedByVendorFunc == nil {
		panic("unexpected call to ListSubmittedByVendor")
	}
	return m.ListSubmittedByVendorFunc(ctx, vendorID)
}

func (m *inquiryRepoMock) UpdateBuyerDocument(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string) (bool, error) {
	m.updateBuyerDocumentCalls++
	if m.UpdateBuyerDocumentFunc == nil {
		panic("unexpected call to UpdateBuyerDocument")
	}
	return m.UpdateBuyerDocumentFunc(ctx, id, doc, summary)
}

func (m *inquiryRepoMock) UpdateVendorResponse(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string, promote bool) (bool, error) {
	m.updateVendorResponseCalls++
	if m.UpdateVendorResponseFunc == nil {
		panic("unexpected call to UpdateVendorResponse")
	}
	return m.UpdateVendorResponseFunc(ctx, id, doc, summary, promote)
}

func (m *inquiryRepoMock) SetStatus(ctx context.Context, id uuid.UUID, from []domain.InquiryStatus, to domain.InquiryStatus, summary *string) (bool, error) {
	m.setStatusCalls++
	if m.SetStatusFunc == nil {
		panic("unexpected call to SetStatus")
	}
	return m.SetStatusFunc(ctx, id, from, to, summary)
}

type datasetRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	getByIDCalls int
}

func (m *datasetRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	m.getByIDCalls++
	if m.GetByIDFunc == nil {
		panic("unexpected call to datasets GetByID")
	}
	return m.GetByIDFunc(ctx, id)
}

// txManagerMock runs the callback inline without any transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
