package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo enforces pending → confirmed|cancelled and
// confirmed → completed. Everything else is rejected.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

var paymentOrder = map[PaymentStatus]int{
	PaymentUnpaid:   0,
	PaymentPartial:  1,
	PaymentPaid:     2,
	PaymentRefunded: 3,
}

// CanTransitionTo allows payment state to move forward along
// unpaid → partial → paid → refunded, independently of booking status.
// Skipping a step (unpaid → paid) is a legitimate admin action.
func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	cur, ok := paymentOrder[p]
	if !ok {
		return false
	}
	nxt, ok := paymentOrder[next]
	if !ok {
		return false
	}
	return nxt > cur
}
