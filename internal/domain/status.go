package domain

// InquiryStatus represents the negotiation state of an inquiry.
//
// Lifecycle: an inquiry is created directly in SUBMITTED (creation submits
// it to the vendor), moves to RESPONDED when the vendor marks its response
// final, may bounce back to SUBMITTED when the buyer edits and resubmits,
// and terminates in ACCEPTED or REJECTED.
type InquiryStatus string

const (
	StatusSubmitted InquiryStatus = "submitted"
	StatusResponded InquiryStatus = "responded"
	StatusAccepted  InquiryStatus = "accepted"
	StatusRejected  InquiryStatus = "rejected"
)

func (s InquiryStatus) String() string { return string(s) }

func (s InquiryStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusResponded, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s InquiryStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// allowedFrom maps each target status to the set of statuses it may be
// entered from. The repository turns these sets into the WHERE clause of a
// conditional UPDATE, so the table here is the single source of truth for
// the transition rules.
var allowedFrom = map[InquiryStatus][]InquiryStatus{
	// Buyer resubmits after the vendor responded.
	StatusSubmitted: {StatusResponded},
	// Vendor marks its response final; a vendor may also revise an
	// already-responded inquiry without leaving RESPONDED.
	StatusResponded: {StatusSubmitted, StatusResponded},
	StatusAccepted:  {StatusResponded},
	StatusRejected:  {StatusResponded},
}

// AllowedFrom returns the statuses from which a transition into to is legal.
// The returned slice must not be mutated.
func AllowedFrom(to InquiryStatus) []InquiryStatus {
	return allowedFrom[to]
}

// CanTransition reports whether from -> to is a legal status transition.
func CanTransition(from, to InquiryStatus) bool {
	if from.IsTerminal() {
		return false
	}
	for _, s := range allowedFrom[to] {
		if s == from {
			return true
		}
	}
	return false
}
