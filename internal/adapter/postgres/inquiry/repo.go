// Package inquiry implements the Inquiry repository using PostgreSQL.
// Status transitions are applied as conditional UPDATEs (WHERE on id AND
// current status); rows-affected is the only concurrency control.
package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/adapter/postgres"
	"github.com/dataharbor/inquiry-backend/internal/domain"
)

const table = "inquiries"

var columns = []string{
	"id", "buyer_id", "dataset_id", "vendor_id", "conversation_id",
	"buyer_inquiry", "vendor_response", "summary", "status",
	"created_at", "updated_at",
}

// Repo provides inquiry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inquiry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an inquiry by primary key.
// Returns domain.ErrNotFound if the inquiry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row inquiryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inquiry", id)
	}

	return row.toDomain()
}

// GetFullState returns the full negotiation state of an inquiry, joined
// with the dataset title and vendor name from the catalog tables.
func (r *Repo) GetFullState(ctx context.Context, id uuid.UUID) (*domain.FullState, error) {
	query := postgres.Builder().
		Select("i.id", "i.status", "i.buyer_inquiry", "i.vendor_response", "i.summary").
		Column("d.title AS dataset_title").
		Column("v.name AS vendor_name").
		From(table + " i").
		Join("datasets d ON i.dataset_id = d.id").
		Join("vendors v ON i.vendor_id = v.id").
		Where(squirrel.Eq{"i.id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row fullStateRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inquiry", id)
	}

	return row.toDomain()
}

// ListSubmittedByVendor returns the vendor work queue: every inquiry for
// the vendor with status exactly 'submitted'. An empty queue returns an
// empty slice, not an error.
func (r *Repo) ListSubmittedByVendor(ctx context.Context, vendorID uuid.UUID) ([]domain.VendorTask, error) {
	query := postgres.Builder().
		Select("i.id AS inquiry_id", "d.title AS dataset_title", "i.buyer_inquiry").
		From(table + " i").
		Join("datasets d ON i.dataset_id = d.id").
		Where(squirrel.Eq{
			"i.vendor_id": vendorID,
			"i.status":    domain.StatusSubmitted.String(),
		}).
		OrderBy("i.created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []vendorTaskRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list vendor work queue: %w", err)
	}

	tasks := make([]domain.VendorTask, 0, len(rows))
	for _, row := range rows {
		task, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new inquiry and returns the persisted row.
// Callers run it inside a transaction together with the dataset lookup so
// the denormalized vendor_id can never dangle.
func (r *Repo) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	buyerDoc, err := marshalDocument(inq.BuyerInquiry)
	if err != nil {
		return nil, fmt.Errorf("encode buyer document: %w", err)
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "buyer_id", "dataset_id", "vendor_id", "conversation_id",
			"buyer_inquiry", "summary", "status", "created_at", "updated_at").
		Values(inq.ID, inq.BuyerID, inq.DatasetID, inq.VendorID, inq.ConversationID,
			buyerDoc, inq.Summary, inq.Status.String(), inq.CreatedAt, inq.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row inquiryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inquiry", inq.ID)
	}

	return row.toDomain()
}

// UpdateBuyerDocument fully replaces the buyer document and, when summary
// is non-nil, the narrative summary. Reports whether a row was changed.
func (r *Repo) UpdateBuyerDocument(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string) (bool, error) {
	docBytes, err := marshalDocument(doc)
	if err != nil {
		return false, fmt.Errorf("encode buyer document: %w", err)
	}

	update := postgres.Builder().
		Update(table).
		Set("buyer_inquiry", docBytes).
		Set("updated_at", squirrel.Expr("now()"))
	if summary != nil {
		update = update.Set("summary", *summary)
	}
	update = update.Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, update, id)
}

// UpdateVendorResponse fully replaces the vendor response document and,
// when summary is non-nil, the narrative summary. With promote=true the
// status is advanced to 'responded', guarded to the statuses that may
// legally enter it; terminal inquiries are never touched.
// Reports whether a row was changed.
func (r *Repo) UpdateVendorResponse(ctx context.Context, id uuid.UUID, doc domain.Document, summary *string, promote bool) (bool, error) {
	docBytes, err := marshalDocument(doc)
	if err != nil {
		return false, fmt.Errorf("encode vendor document: %w", err)
	}

	update := postgres.Builder().
		Update(table).
		Set("vendor_response", docBytes).
		Set("updated_at", squirrel.Expr("now()"))
	if summary != nil {
		update = update.Set("summary", *summary)
	}

	update = update.Where(squirrel.Eq{"id": id})
	if promote {
		update = update.
			Set("status", domain.StatusResponded.String()).
			Where(squirrel.Eq{"status": statusStrings(domain.AllowedFrom(domain.StatusResponded))})
	}

	return r.execUpdate(ctx, update, id)
}

// SetStatus applies a guarded status transition: the row is updated only if
// its current status is in from. When summary is non-nil it is written in
// the same statement (used by accept/reject for their server-side notes).
// Reports whether the transition was applied; a false result means either
// no such inquiry or a current status outside from; callers that need to
// know which must re-read.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, from []domain.InquiryStatus, to domain.InquiryStatus, summary *string) (bool, error) {
	update := postgres.Builder().
		Update(table).
		Set("status", to.String()).
		Set("updated_at", squirrel.Expr("now()"))
	if summary != nil {
		update = update.Set("summary", *summary)
	}
	update = update.Where(squirrel.Eq{
		"id":     id,
		"status": statusStrings(from),
	})

	return r.execUpdate(ctx, update, id)
}

// execUpdate runs an UPDATE and reports whether any row was affected.
func (r *Repo) execUpdate(ctx context.Context, update squirrel.UpdateBuilder, id uuid.UUID) (bool, error) {
	sql, args, err := update.ToSql()
	if err != nil {
		return false, fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "inquiry", id)
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type inquiryRow struct {
	ID             uuid.UUID `db:"id"`
	BuyerID        uuid.UUID `db:"buyer_id"`
	DatasetID      uuid.UUID `db:"dataset_id"`
	VendorID       uuid.UUID `db:"vendor_id"`
	ConversationID uuid.UUID `db:"conversation_id"`
	BuyerInquiry   []byte    `db:"buyer_inquiry"`
	VendorResponse []byte    `db:"vendor_response"`
	Summary        string    `db:"summary"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row inquiryRow) toDomain() (*domain.Inquiry, error) {
	buyerDoc, err := unmarshalDocument(row.BuyerInquiry)
	if err != nil {
		return nil, fmt.Errorf("decode buyer document: %w", err)
	}
	vendorDoc, err := unmarshalDocument(row.VendorResponse)
	if err != nil {
		return nil, fmt.Errorf("decode vendor document: %w", err)
	}

	return &domain.Inquiry{
		ID:             row.ID,
		BuyerID:        row.BuyerID,
		DatasetID:      row.DatasetID,
		VendorID:       row.VendorID,
		ConversationID: row.ConversationID,
		BuyerInquiry:   buyerDoc,
		VendorResponse: vendorDoc,
		Summary:        row.Summary,
		Status:         domain.InquiryStatus(row.Status),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

type fullStateRow struct {
	ID             uuid.UUID `db:"id"`
	Status         string    `db:"status"`
	BuyerInquiry   []byte    `db:"buyer_inquiry"`
	VendorResponse []byte    `db:"vendor_response"`
	Summary        string    `db:"summary"`
	DatasetTitle   string    `db:"dataset_title"`
	VendorName     string    `db:"vendor_name"`
}

func (row fullStateRow) toDomain() (*domain.FullState, error) {
	buyerDoc, err := unmarshalDocument(row.BuyerInquiry)
	if err != nil {
		return nil, fmt.Errorf("decode buyer document: %w", err)
	}
	vendorDoc, err := unmarshalDocument(row.VendorResponse)
	if err != nil {
		return nil, fmt.Errorf("decode vendor document: %w", err)
	}

	return &domain.FullState{
		InquiryID:      row.ID,
		Status:         domain.InquiryStatus(row.Status),
		BuyerInquiry:   buyerDoc,
		VendorResponse: vendorDoc,
		Summary:        row.Summary,
		DatasetTitle:   row.DatasetTitle,
		VendorName:     row.VendorName,
	}, nil
}

type vendorTaskRow struct {
	InquiryID    uuid.UUID `db:"inquiry_id"`
	DatasetTitle string    `db:"dataset_title"`
	BuyerInquiry []byte    `db:"buyer_inquiry"`
}

func (row vendorTaskRow) toDomain() (domain.VendorTask, error) {
	doc, err := unmarshalDocument(row.BuyerInquiry)
	if err != nil {
		return domain.VendorTask{}, fmt.Errorf("decode buyer document: %w", err)
	}
	return domain.VendorTask{
		InquiryID:    row.InquiryID,
		DatasetTitle: row.DatasetTitle,
		BuyerInquiry: doc,
	}, nil
}

// ---------------------------------------------------------------------------
// jsonb helpers
// ---------------------------------------------------------------------------

func marshalDocument(doc domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}
	return json.Marshal(doc)
}

func unmarshalDocument(raw []byte) (domain.Document, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func statusStrings(statuses []domain.InquiryStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
