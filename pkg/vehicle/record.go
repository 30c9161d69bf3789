package vehicle

import "time"

// Record is the sole entity of the registry. All descriptive fields are
// string-typed on the wire; Renavam and Year stay strings in memory too
// because leading zeros and exact length are significant.
type Record struct {
	ID           ID         `json:"id,omitempty"`
	Plate        string     `json:"plate"`
	Chassis      string     `json:"chassisNumber"`
	Renavam      string     `json:"registrationNumber"`
	Model        string     `json:"model"`
	Make         string     `json:"make"`
	Year         string     `json:"year"`
	CheckinDate  time.Time  `json:"checkinDate"`
	CheckoutDate *time.Time `json:"checkoutDate"`
}

// Active reports whether the vehicle is on premises. The partition flag is
// the checkout date and nothing else.
func (r *Record) Active() bool {
	return r.CheckoutDate == nil
}

// Partition returns the partition the record currently belongs to.
func (r *Record) Partition() Partition {
	if r.Active() {
		return PartitionActive
	}
	return PartitionHistory
}

// MarkCheckedOut stamps the departure time, moving the record into the
// history partition. Re-stamping an already checked-out record overwrites
// the previous timestamp; the store offers no idempotency and neither do we.
func (r *Record) MarkCheckedOut(now time.Time) {
	t := now.UTC()
	r.CheckoutDate = &t
}

// MarkReturned clears the departure time, moving the record back into the
// active partition. The prior checkout timestamp is discarded.
func (r *Record) MarkReturned() {
	r.CheckoutDate = nil
}
