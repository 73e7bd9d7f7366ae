package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhaven/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func seasonalRule(id string, from, to time.Time, price float64) models.PricingRule {
	return models.PricingRule{
		ID:            id,
		Kind:          models.RuleSeasonal,
		StartDate:     from,
		EndDate:       to,
		PricePerNight: floatPtr(price),
	}
}

func TestPriceForNightBasePriceWithoutRules(t *testing.T) {
	price := PriceForNight(100, nil, date(2026, time.July, 10))
	assert.Equal(t, 100.0, price)
}

func TestPriceForNightSeasonalOverridesBase(t *testing.T) {
	rules := []models.PricingRule{
		seasonalRule("summer", date(2026, time.June, 1), date(2026, time.September, 1), 150),
	}
	assert.Equal(t, 150.0, PriceForNight(100, rules, date(2026, time.July, 10)))
	assert.Equal(t, 100.0, PriceForNight(100, rules, date(2026, time.September, 1)))
}

func TestPriceForNightNarrowerSeasonalWins(t *testing.T) {
	rules := []models.PricingRule{
		seasonalRule("summer", date(2026, time.June, 1), date(2026, time.September, 1), 150),
		seasonalRule("festival-week", date(2026, time.July, 6), date(2026, time.July, 13), 220),
	}
	assert.Equal(t, 220.0, PriceForNight(100, rules, date(2026, time.July, 10)))
	assert.Equal(t, 150.0, PriceForNight(100, rules, date(2026, time.July, 20)))
}

func TestPriceForNightEqualWidthTieTakesHigherPrice(t *testing.T) {
	rules := []models.PricingRule{
		seasonalRule("a", date(2026, time.July, 1), date(2026, time.July, 8), 130),
		seasonalRule("b", date(2026, time.July, 1), date(2026, time.July, 8), 170),
	}
	assert.Equal(t, 170.0, PriceForNight(100, rules, date(2026, time.July, 3)))
}

func TestPriceForNightPercentCompoundsAfterAbsolutes(t *testing.T) {
	// Seasonal absolute 150, weekend +20% on Saturday: 150 * 1.2 = 180.
	rules := []models.PricingRule{
		seasonalRule("summer", date(2026, time.June, 1), date(2026, time.September, 1), 150),
		{
			ID:            "weekend-markup",
			Kind:          models.RuleWeekend,
			StartDate:     date(2026, time.June, 1),
			EndDate:       date(2026, time.September, 1),
			Weekday:       intPtr(5), // Saturday
			PercentChange: floatPtr(20),
		},
	}
	saturday := date(2026, time.July, 11)
	assert.Equal(t, 5, models.ISOWeekday(saturday))
	assert.InDelta(t, 180.0, PriceForNight(100, rules, saturday), 1e-9)

	friday := date(2026, time.July, 10)
	assert.InDelta(t, 150.0, PriceForNight(100, rules, friday), 1e-9)
}

func TestPriceForNightDiscountNeverRaisesPrice(t *testing.T) {
	rules := []models.PricingRule{
		seasonalRule("summer", date(2026, time.June, 1), date(2026, time.September, 1), 150),
		{
			ID:            "last-minute",
			Kind:          models.RuleDiscount,
			StartDate:     date(2026, time.July, 1),
			EndDate:       date(2026, time.August, 1),
			PercentChange: floatPtr(-10),
		},
	}
	withDiscount := PriceForNight(100, rules, date(2026, time.July, 10))
	assert.InDelta(t, 135.0, withDiscount, 1e-9)
	assert.LessOrEqual(t, withDiscount, 150.0)
}

func TestPriceForNightMultiplePercentsCompound(t *testing.T) {
	rules := []models.PricingRule{
		{
			ID:            "weekend-markup",
			Kind:          models.RuleWeekend,
			StartDate:     date(2026, time.July, 1),
			EndDate:       date(2026, time.August, 1),
			PercentChange: floatPtr(20),
		},
		{
			ID:            "promo",
			Kind:          models.RuleDiscount,
			StartDate:     date(2026, time.July, 1),
			EndDate:       date(2026, time.August, 1),
			PercentChange: floatPtr(-10),
		},
	}
	// 100 * 1.2 * 0.9, in either input order.
	assert.InDelta(t, 108.0, PriceForNight(100, rules, date(2026, time.July, 10)), 1e-9)
}

func TestPriceForNightOrderIndependent(t *testing.T) {
	rules := []models.PricingRule{
		seasonalRule("summer", date(2026, time.June, 1), date(2026, time.September, 1), 150),
		seasonalRule("festival", date(2026, time.July, 6), date(2026, time.July, 13), 220),
		{
			ID:            "weekend-markup",
			Kind:          models.RuleWeekend,
			StartDate:     date(2026, time.June, 1),
			EndDate:       date(2026, time.September, 1),
			PercentChange: floatPtr(15),
		},
		{
			ID:            "promo",
			Kind:          models.RuleDiscount,
			StartDate:     date(2026, time.July, 1),
			EndDate:       date(2026, time.August, 1),
			PercentChange: floatPtr(-5),
		},
	}
	day := date(2026, time.July, 10)
	want := PriceForNight(100, rules, day)

	permutations := [][]int{
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	for _, perm := range permutations {
		shuffled := make([]models.PricingRule, 0, len(rules))
		for _, idx := range perm {
			shuffled = append(shuffled, rules[idx])
		}
		assert.InDelta(t, want, PriceForNight(100, shuffled, day), 1e-9)
	}
}

func TestPriceForRangeSumsNightly(t *testing.T) {
	rules := []models.PricingRule{
		seasonalRule("summer", date(2026, time.July, 12), date(2026, time.September, 1), 150),
	}
	// Jul 10, 11 at base 100; Jul 12, 13 at 150. Check-out night excluded.
	total := PriceForRange(100, rules, date(2026, time.July, 10), date(2026, time.July, 14))
	assert.InDelta(t, 500.0, total, 1e-9)
}

func TestPriceForRangeEmptyRangeIsZero(t *testing.T) {
	assert.Equal(t, 0.0, PriceForRange(100, nil, date(2026, time.July, 10), date(2026, time.July, 10)))
}
