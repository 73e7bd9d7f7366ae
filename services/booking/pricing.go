package booking

import (
	"sort"
	"time"

	"stayhaven/models"
)

// kindRank fixes the order pricing layers apply in: seasonal prices first,
// weekend adjustments second, discounts always last.
func kindRank(k models.PricingRuleKind) int {
	switch k {
	case models.RuleSeasonal:
		return 0
	case models.RuleWeekend:
		return 1
	default:
		return 2
	}
}

// PriceForNight resolves the nightly rate for one date. Absolute rules are
// applied broadest-first within each kind so that the narrowest matching rule
// ends up winning; ties on width go to the highest price. Percentage rules
// then compound multiplicatively over the resolved absolute price, discounts
// last. The result depends only on the rule set, never on storage order.
func PriceForNight(basePrice float64, rules []models.PricingRule, date time.Time) float64 {
	var absolutes, percents []models.PricingRule
	for _, r := range rules {
		if !r.Matches(date) {
			continue
		}
		if r.PricePerNight != nil {
			absolutes = append(absolutes, r)
		} else if r.PercentChange != nil {
			percents = append(percents, r)
		}
	}

	// Later application overrides, so order: kind, then widest range first,
	// then lowest price first. The rule applied last is the narrowest, and on
	// equal width the highest priced. rule IDs break exact ties so the
	// resolution is deterministic regardless of insertion order.
	sort.Slice(absolutes, func(i, j int) bool {
		a, b := &absolutes[i], &absolutes[j]
		if ra, rb := kindRank(a.Kind), kindRank(b.Kind); ra != rb {
			return ra < rb
		}
		if wa, wb := a.RangeWidth(), b.RangeWidth(); wa != wb {
			return wa > wb
		}
		if *a.PricePerNight != *b.PricePerNight {
			return *a.PricePerNight < *b.PricePerNight
		}
		return a.ID < b.ID
	})

	price := basePrice
	for _, r := range absolutes {
		price = *r.PricePerNight
	}

	// Percentages compound; ordering only matters for determinism of
	// floating point rounding, so fix it the same way.
	sort.Slice(percents, func(i, j int) bool {
		a, b := &percents[i], &percents[j]
		if ra, rb := kindRank(a.Kind), kindRank(b.Kind); ra != rb {
			return ra < rb
		}
		if wa, wb := a.RangeWidth(), b.RangeWidth(); wa != wb {
			return wa > wb
		}
		return a.ID < b.ID
	})
	for _, r := range percents {
		price *= 1 + *r.PercentChange/100
	}

	return price
}

// PriceForRange sums PriceForNight over every night of the half-open range
// [checkIn, checkOut); the check-out night is excluded.
func PriceForRange(basePrice float64, rules []models.PricingRule, checkIn, checkOut time.Time) float64 {
	total := 0.0
	models.EachDay(checkIn, checkOut, func(d time.Time) {
		total += PriceForNight(basePrice, rules, d)
	})
	return total
}
