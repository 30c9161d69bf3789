package vehicle

// Partition identifies one side of the active/history split, or both.
type Partition string

const (
	// PartitionAll selects every record regardless of checkout state.
	PartitionAll Partition = "all"
	// PartitionActive selects records with a nil checkout date.
	PartitionActive Partition = "active"
	// PartitionHistory selects records with a non-nil checkout date.
	PartitionHistory Partition = "history"
)

// Matches reports whether the record falls into this partition.
func (p Partition) Matches(r *Record) bool {
	switch p {
	case PartitionActive:
		return r.Active()
	case PartitionHistory:
		return !r.Active()
	default:
		return true
	}
}

// Split divides records into their active and history halves, preserving
// order. Every record lands in exactly one of the two slices.
func Split(records []Record) (active, history []Record) {
	for _, r := range records {
		if r.Active() {
			active = append(active, r)
		} else {
			history = append(history, r)
		}
	}
	return active, history
}
