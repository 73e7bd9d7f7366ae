package models

import "time"

// CalendarBlockType distinguishes an owner-entered block from a hold derived
// from a confirmed booking. Holds carry the owning booking's ID so that
// cancellation releases exactly its own dates and never an owner block.
type CalendarBlockType string

const (
	BlockManual      CalendarBlockType = "MANUAL"
	BlockBookingHold CalendarBlockType = "BOOKING_HOLD"
)

// CalendarDay is the per-(apartment, date) availability record. Absence of a
// record for a date means the date is available with no stay constraints.
type CalendarDay struct {
	ApartmentID   string            `bson:"apartment_id" json:"apartment_id"`
	Date          time.Time         `bson:"date" json:"date"` // UTC midnight
	Available     bool              `bson:"available" json:"available"`
	MinStay       *int              `bson:"min_stay,omitempty" json:"min_stay,omitempty"`
	MaxStay       *int              `bson:"max_stay,omitempty" json:"max_stay,omitempty"`
	Note          string            `bson:"note,omitempty" json:"note,omitempty"`
	BlockType     CalendarBlockType `bson:"block_type,omitempty" json:"block_type,omitempty"`
	HoldBookingID string            `bson:"hold_booking_id,omitempty" json:"hold_booking_id,omitempty"`
}

// HasConstraints reports whether the record carries information beyond a
// booking hold, i.e. whether it must survive the hold's release.
func (d *CalendarDay) HasConstraints() bool {
	return d.MinStay != nil || d.MaxStay != nil || d.Note != ""
}
