package entities

// GroupSummary is one vehicle's slice of the filtered and sorted slip
// collection, with its aggregates. Slip order inherits the active sort.

type GroupSummary struct {
	Vehicle      Vehicle       `json:"vehicle"`
	Slips        []PaymentSlip `json:"slips"`
	TotalAmount  float64       `json:"totalAmount"`
	PendingCount int           `json:"pendingCount"`
	OverdueCount int           `json:"overdueCount"`
	PaidCount    int           `json:"paidCount"`
}

// GroupState tracks one vehicle group's expand/collapse state and whether
// that state was last set by a global broadcast or by the user directly.
// Created lazily on first transition; lives for the session.

type GroupState struct {
	IsExpanded           bool  `json:"isExpanded"`
	IsGloballyControlled bool  `json:"isGloballyControlled"`
	LastSeenSequence     int64 `json:"-"`
}

// GlobalActionKind is the broadcast direction.

type GlobalActionKind string

const (
	GlobalExpand   GlobalActionKind = "expand"
	GlobalCollapse GlobalActionKind = "collapse"
)

// GlobalAction is the latest expand-all/collapse-all broadcast. Sequence is
// strictly increasing within a session; each group consumes a given sequence
// at most once, so replaying an already-seen action is a no-op.

type GlobalAction struct {
	Kind     GlobalActionKind `json:"kind"`
	Sequence int64            `json:"sequence"`
}
