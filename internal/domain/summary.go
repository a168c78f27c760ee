package domain

import (
	"fmt"
	"strings"
)

// ValidateSummaryExtension enforces the append-only contract on the
// narrative summary: once non-empty, every subsequent value must contain
// the entire prior value as a contiguous substring.
//
// This is a cooperative-agent contract, not a cryptographic guarantee: it
// catches truncation and replacement, not clever reordering.
func ValidateSummaryExtension(existing, proposed string) error {
	if existing == "" {
		return nil
	}
	if !strings.Contains(proposed, existing) {
		return &SummaryContractError{Existing: existing}
	}
	return nil
}

// AcceptanceNote renders the server-side summary note appended when the
// buyer accepts the vendor's response. Constructed here, not supplied by
// the agent, so it bypasses the append-only guard safely.
func AcceptanceNote(finalNotes string) string {
	notes := strings.TrimSpace(finalNotes)
	if notes == "" {
		notes = "No additional notes."
	}
	return fmt.Sprintf("\n\nDEAL ACCEPTED by buyer. %s", notes)
}

// RejectionNote renders the server-side summary note appended when the
// buyer rejects the vendor's response.
func RejectionNote(reason string) string {
	return fmt.Sprintf("\n\nDEAL REJECTED by buyer. Reason: %s", strings.TrimSpace(reason))
}
