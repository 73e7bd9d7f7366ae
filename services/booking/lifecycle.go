package booking

import "stayhaven/models"

// CancelActor identifies who requested a cancellation; it selects the
// terminal status.
type CancelActor string

const (
	ActorGuest CancelActor = "guest"
	ActorAdmin CancelActor = "admin"
)

// statusTransitions is the booking lifecycle. Anything not listed here is an
// illegal transition. COMPLETED and both cancelled states are terminal.
var statusTransitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.StatusPending: {
		models.StatusConfirmed:        true,
		models.StatusCancelledByUser:  true,
		models.StatusCancelledByAdmin: true,
	},
	models.StatusConfirmed: {
		models.StatusCancelledByAdmin: true,
		models.StatusCompleted:        true,
	},
}

// CanTransition reports whether the lifecycle defines the edge from -> to.
func CanTransition(from, to models.BookingStatus) bool {
	return statusTransitions[from][to]
}

// paymentTransitions is the orthogonal payment sub-state machine. REFUNDED is
// only reachable from PAID.
var paymentTransitions = map[models.PaymentStatus]map[models.PaymentStatus]bool{
	models.PaymentNotRequired: {
		models.PaymentUnpaid: true,
		models.PaymentPaid:   true,
	},
	models.PaymentUnpaid: {
		models.PaymentPaid: true,
	},
	models.PaymentPaid: {
		models.PaymentRefunded: true,
	},
}

// CanTransitionPayment reports whether the payment sub-state edge is defined.
func CanTransitionPayment(from, to models.PaymentStatus) bool {
	return paymentTransitions[from][to]
}

// cancelTarget maps the cancelling actor to the terminal status.
func cancelTarget(actor CancelActor) models.BookingStatus {
	if actor == ActorAdmin {
		return models.StatusCancelledByAdmin
	}
	return models.StatusCancelledByUser
}
