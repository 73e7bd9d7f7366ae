package pricingRepo

import (
	"context"
	"time"

	"stayhaven/models"
)

// PricingRuleRepository stores the pricing rules layered over an apartment's
// base nightly price. Rules overlap freely; resolution happens at query time.
type PricingRuleRepository interface {
	Create(ctx context.Context, rule *models.PricingRule) error
	Delete(ctx context.Context, apartmentID, ruleID string) error
	ListByApartment(ctx context.Context, apartmentID string) ([]models.PricingRule, error)
	// ListForRange returns every rule whose date range intersects [from, to).
	ListForRange(ctx context.Context, apartmentID string, from, to time.Time) ([]models.PricingRule, error)
}
