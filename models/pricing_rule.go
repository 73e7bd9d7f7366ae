package models

import "time"

// PricingRuleKind identifies the layer a rule belongs to. Resolution applies
// SEASONAL first, then WEEKEND, then DISCOUNT; percentage modifiers always
// compound after every absolute price has been resolved.
type PricingRuleKind string

const (
	RuleSeasonal PricingRuleKind = "SEASONAL"
	RuleWeekend  PricingRuleKind = "WEEKEND"
	RuleDiscount PricingRuleKind = "DISCOUNT"
)

// PricingRule adjusts the nightly price of an apartment over a half-open date
// range [StartDate, EndDate), optionally restricted to a single weekday.
// Exactly one of PricePerNight (absolute) or PercentChange (relative, e.g.
// +20 or -15) is set. Overlapping rules are expected and resolved at query
// time, never rejected at write time.
type PricingRule struct {
	ID            string          `bson:"id" json:"id"`
	ApartmentID   string          `bson:"apartment_id" json:"apartment_id"`
	Kind          PricingRuleKind `bson:"kind" json:"kind"`
	StartDate     time.Time       `bson:"start_date" json:"start_date"`
	EndDate       time.Time       `bson:"end_date" json:"end_date"`
	Weekday       *int            `bson:"weekday,omitempty" json:"weekday,omitempty"` // 0=Monday .. 6=Sunday, nil = all days
	PricePerNight *float64        `bson:"price_per_night,omitempty" json:"price_per_night,omitempty"`
	PercentChange *float64        `bson:"percent_change,omitempty" json:"percent_change,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
}

// Matches reports whether the rule applies to the given date.
func (r *PricingRule) Matches(date time.Time) bool {
	d := DateOnly(date)
	if d.Before(DateOnly(r.StartDate)) || !d.Before(DateOnly(r.EndDate)) {
		return false
	}
	if r.Weekday != nil && *r.Weekday != ISOWeekday(d) {
		return false
	}
	return true
}

// RangeWidth is the rule's span in days, used for specificity ordering: the
// narrower the range, the more specific the rule.
func (r *PricingRule) RangeWidth() int {
	return Nights(r.StartDate, r.EndDate)
}
