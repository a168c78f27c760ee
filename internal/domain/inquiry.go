package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is an opaque structured payload supplied by an agent.
// The core never enforces a schema on its contents; it is replaced
// wholesale on every update and persisted as a jsonb blob.
type Document map[string]any

// Inquiry is the single record representing one buyer-vendor negotiation
// over one dataset. There is no history table: the negotiation history
// lives inside Summary, which only ever grows (see ValidateSummaryExtension).
type Inquiry struct {
	ID             uuid.UUID
	BuyerID        uuid.UUID
	DatasetID      uuid.UUID
	// VendorID is denormalized from the dataset at creation time and is
	// never recomputed afterwards.
	VendorID       uuid.UUID
	ConversationID uuid.UUID

	BuyerInquiry   Document
	VendorResponse Document // nil until the vendor responds

	Summary string
	Status  InquiryStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullState is the read projection handed back to agents so they can parse
// the negotiation story and decide what to do next.
type FullState struct {
	InquiryID      uuid.UUID     `json:"inquiry_id"`
	Status         InquiryStatus `json:"status"`
	BuyerInquiry   Document      `json:"buyer_inquiry"`
	VendorResponse Document      `json:"vendor_response"`
	Summary        string        `json:"summary"`
	DatasetTitle   string        `json:"dataset_title"`
	VendorName     string        `json:"vendor_name"`
}

// VendorTask is one entry in the vendor work queue: an inquiry awaiting
// vendor action, with just enough context to act on it.
type VendorTask struct {
	InquiryID    uuid.UUID `json:"inquiry_id"`
	DatasetTitle string    `json:"dataset_title"`
	BuyerInquiry Document  `json:"buyer_inquiry"`
}

// Dataset is a read-only reference entity owned by the catalog.
type Dataset struct {
	ID       uuid.UUID
	VendorID uuid.UUID
	Title    string
}

// Vendor is a read-only reference entity owned by the catalog.
type Vendor struct {
	ID   uuid.UUID
	Name string
}
