package booking

// RejectionKind identifies why a booking attempt was turned down. Rejections
// are expected outcomes of the validation sequence, carried as values rather
// than errors; infrastructure failures travel separately.
type RejectionKind string

const (
	// InvalidFormat: the request's date, slot, or identity fields failed
	// shape validation, or the requested time is in the past.
	InvalidFormat RejectionKind = "invalid_format"
	// SlotNoLongerOffered: the slot is not in the doctor's currently
	// effective template for that weekday (stale client).
	SlotNoLongerOffered RejectionKind = "slot_no_longer_offered"
	// SlotAlreadyTaken: an active booking holds the (doctor, date, slot)
	// tuple; the optimistic write lost the race.
	SlotAlreadyTaken RejectionKind = "slot_already_taken"
	// DuplicateBookingSameDay: the patient already holds an active booking
	// in the scope defined by the duplicate policy.
	DuplicateBookingSameDay RejectionKind = "duplicate_booking_same_day"
)

// Rejection is a typed refusal of a booking attempt. The guard never renders
// user-facing text; Detail carries machine-usable context (such as the
// conflicting slot) for the web layer to phrase.
type Rejection struct {
	Kind   RejectionKind `json:"kind"`
	Detail string        `json:"detail,omitempty"`
}

func reject(kind RejectionKind, detail string) *Rejection {
	return &Rejection{Kind: kind, Detail: detail}
}
