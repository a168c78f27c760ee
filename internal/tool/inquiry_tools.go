package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
	"github.com/dataharbor/inquiry-backend/internal/service/inquiry"
)

// inquiryService is the slice of the inquiry service the tools need.
type inquiryService interface {
	Create(ctx context.Context, input inquiry.CreateInput) (*domain.Inquiry, error)
	UpdateBuyerDocument(ctx context.Context, input inquiry.UpdateBuyerInput) error
	Resubmit(ctx context.Context, inquiryID uuid.UUID) error
	FullState(ctx context.Context, inquiryID uuid.UUID) (*domain.FullState, error)
	WorkQueue(ctx context.Context, vendorID uuid.UUID) ([]domain.VendorTask, error)
	UpdateVendorResponse(ctx context.Context, input inquiry.VendorResponseInput) error
	Accept(ctx context.Context, input inquiry.AcceptInput) error
	Reject(ctx context.Context, input inquiry.RejectInput) error
}

// Sentinel strings that are part of the agent-facing contract.
const (
	msgInquiryNotFound = "Inquiry not found."
	msgDatasetNotFound = "Error: Dataset not found."
	msgEmptyWorkQueue  = "No pending inquiries."
)

// RegisterInquiryTools registers the eight negotiation tools on the registry.
func RegisterInquiryTools(r *Registry, svc inquiryService) error {
	tools := []Tool{
		{
			Name: "create_buyer_inquiry",
			Description: "Initialize a new inquiry and submit it to the vendor. " +
				"Define the initial structure of the buyer's inquiry JSON and provide an initial narrative summary.",
			Handler: createBuyerInquiry(svc),
		},
		{
			Name: "update_buyer_json",
			Description: "Replace the buyer's inquiry JSON and append to the historical summary narrative. " +
				"First call get_inquiry_full_state, then pass the complete cumulative summary (old + new).",
			Handler: updateBuyerJSON(svc),
		},
		{
			Name: "submit_inquiry_to_vendor",
			Description: "Submit the inquiry to the vendor after modifications. " +
				"Changes status back to 'submitted' from 'responded'.",
			Handler: resubmitInquiry(svc),
		},
		{
			Name: "resubmit_inquiry_to_vendor",
			Description: "Re-submit the inquiry to the vendor after modifications. " +
				"Changes status back to 'submitted' from 'responded'.",
			Handler: resubmitInquiry(svc),
		},
		{
			Name: "get_inquiry_full_state",
			Description: "Get the raw JSON states for both buyer and vendor, including the cumulative " +
				"historical summary. Use this to read the full negotiation story before updating anything.",
			Handler: getFullState(svc),
		},
		{
			Name:        "get_vendor_work_queue",
			Description: "Find inquiries waiting for the vendor (status='submitted').",
			Handler:     getWorkQueue(svc),
		},
		{
			Name: "update_vendor_response_json",
			Description: "Replace the vendor's response JSON and append to the historical summary narrative. " +
				"Pass mark_ready_for_review=true to change status to 'responded' and notify the buyer.",
			Handler: updateVendorResponseJSON(svc),
		},
		{
			Name:        "accept_vendor_response",
			Description: "Accept the vendor's response and finalize the deal. Changes status to 'accepted'.",
			Handler:     acceptResponse(svc),
		},
		{
			Name: "reject_vendor_response",
			Description: "Reject the vendor's response. Changes status to 'rejected'. " +
				"A rejection reason is required as feedback for the vendor.",
			Handler: rejectResponse(svc),
		},
	}

	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func createBuyerInquiry(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		buyerID, err := uuidArg(args, "buyer_id")
		if err != nil {
			return renderError(err, msgDatasetNotFound)
		}
		datasetID, err := uuidArg(args, "dataset_id")
		if err != nil {
			return renderError(err, msgDatasetNotFound)
		}
		conversationID, err := uuidArg(args, "conversation_id")
		if err != nil {
			return renderError(err, msgDatasetNotFound)
		}
		doc, err := docArg(args, "initial_state_json")
		if err != nil {
			return renderError(err, msgDatasetNotFound)
		}
		summary, err := optStringArg(args, "initial_summary")
		if err != nil {
			return renderError(err, msgDatasetNotFound)
		}

		input := inquiry.CreateInput{
			BuyerID:         buyerID,
			DatasetID:       datasetID,
			ConversationID:  conversationID,
			InitialDocument: doc,
		}
		if summary != nil {
			input.InitialSummary = *summary
		}

		created, err := svc.Create(ctx, input)
		if err != nil {
			return renderError(err, msgDatasetNotFound)
		}
		return fmt.Sprintf("Inquiry created and submitted to vendor (ID: %s). Status is 'submitted'.", created.ID)
	}
}

func updateBuyerJSON(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		inquiryID, err := uuidArg(args, "inquiry_id")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		doc, err := docArg(args, "new_state_json")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		summary, err := optStringArg(args, "updated_summary")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}

		if err := svc.UpdateBuyerDocument(ctx, inquiry.UpdateBuyerInput{
			InquiryID: inquiryID,
			Document:  doc,
			Summary:   summary,
		}); err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		return "Buyer JSON state and summary updated successfully."
	}
}

func resubmitInquiry(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		inquiryID, err := uuidArg(args, "inquiry_id")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}

		if err := svc.Resubmit(ctx, inquiryID); err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		return "Inquiry re-submitted. The vendor agent will now see the updated inquiry."
	}
}

func getFullState(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		inquiryID, err := uuidArg(args, "inquiry_id")
		if err != nil {
			return renderError(err, msgInquiryNotFound)
		}

		state, err := svc.FullState(ctx, inquiryID)
		if err != nil {
			return renderError(err, msgInquiryNotFound)
		}
		return mustJSON(state)
	}
}

func getWorkQueue(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		vendorID, err := uuidArg(args, "vendor_id")
		if err != nil {
			return renderError(err, msgEmptyWorkQueue)
		}

		tasks, err := svc.WorkQueue(ctx, vendorID)
		if err != nil {
			return renderError(err, msgEmptyWorkQueue)
		}
		if len(tasks) == 0 {
			return msgEmptyWorkQueue
		}
		return mustJSON(tasks)
	}
}

func updateVendorResponseJSON(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		inquiryID, err := uuidArg(args, "inquiry_id")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		doc, err := docArg(args, "new_response_json")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		summary, err := optStringArg(args, "updated_summary")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		markReady, err := optBoolArg(args, "mark_ready_for_review", false)
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}

		if err := svc.UpdateVendorResponse(ctx, inquiry.VendorResponseInput{
			InquiryID: inquiryID,
			Document:  doc,
			Summary:   summary,
			MarkReady: markReady,
		}); err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}

		if markReady {
			return "Vendor response and summary updated. Status changed to 'responded' - the buyer will be notified."
		}
		return "Vendor response and summary updated. Status unchanged; pass mark_ready_for_review=true when the response is final."
	}
}

func acceptResponse(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		inquiryID, err := uuidArg(args, "inquiry_id")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		notes, err := optStringArg(args, "final_notes")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}

		input := inquiry.AcceptInput{InquiryID: inquiryID}
		if notes != nil {
			input.FinalNotes = *notes
		}

		if err := svc.Accept(ctx, input); err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		return "Inquiry accepted! Deal finalized. The vendor will be notified."
	}
}

func rejectResponse(svc inquiryService) Handler {
	return func(ctx context.Context, args map[string]any) string {
		inquiryID, err := uuidArg(args, "inquiry_id")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		reason, err := stringArg(args, "rejection_reason")
		if err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}

		if err := svc.Reject(ctx, inquiry.RejectInput{
			InquiryID: inquiryID,
			Reason:    reason,
		}); err != nil {
			return renderError(err, "Error: "+msgInquiryNotFound)
		}
		return "Inquiry rejected. The vendor will be notified."
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// renderError turns any service error into the agent-facing string
// contract. notFound is the caller-specific message for ErrNotFound: the
// create tool reports a missing dataset, everything else a missing inquiry.
func renderError(err error, notFound string) string {
	var contractErr *domain.SummaryContractError
	if errors.As(err, &contractErr) {
		return fmt.Sprintf(
			"ERROR: The updated_summary must CONTAIN the entire existing summary. "+
				"You provided a summary that does not include the existing text. "+
				"EXISTING SUMMARY: '%s'. "+
				"Call get_inquiry_full_state, read the existing summary, and APPEND your new text to it.",
			contractErr.Existing)
	}

	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error: %s.", statusErr.Error())
	}

	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Error: %s.", validationErr.Error())
	}

	return fmt.Sprintf("Error: %s.", err.Error())
}

func mustJSON(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		// Documents come straight off json decoding, so this cannot
		// realistically fail; degrade to an error string if it does.
		return fmt.Sprintf("Error: encode result: %s.", err.Error())
	}
	return string(out)
}
