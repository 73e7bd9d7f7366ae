package pricingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayhaven/database"
	"stayhaven/models"
)

// MongoPricingRuleRepo implements PricingRuleRepository using MongoDB.
type MongoPricingRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRuleRepo creates a new instance of PricingRuleRepository using MongoDB.
func NewMongoPricingRuleRepo() PricingRuleRepository {
	coll := database.DB().Collection("pricing_rules")
	repo := &MongoPricingRuleRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("pricing repo index creation failed: %v", err))
	}
	return repo
}

func (r *MongoPricingRuleRepo) Create(ctx context.Context, rule *models.PricingRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	rule.StartDate = models.DateOnly(rule.StartDate)
	rule.EndDate = models.DateOnly(rule.EndDate)
	rule.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to insert pricing rule: %w", err)
	}
	return nil
}

func (r *MongoPricingRuleRepo) Delete(ctx context.Context, apartmentID, ruleID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": ruleID, "apartment_id": apartmentID})
	if err != nil {
		return fmt.Errorf("failed to delete pricing rule %s: %w", ruleID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoPricingRuleRepo) ListByApartment(ctx context.Context, apartmentID string) ([]models.PricingRule, error) {
	return r.list(ctx, bson.M{"apartment_id": apartmentID})
}

func (r *MongoPricingRuleRepo) ListForRange(ctx context.Context, apartmentID string, from, to time.Time) ([]models.PricingRule, error) {
	filter := bson.M{
		"apartment_id": apartmentID,
		"start_date":   bson.M{"$lt": models.DateOnly(to)},
		"end_date":     bson.M{"$gt": models.DateOnly(from)},
	}
	return r.list(ctx, filter)
}

func (r *MongoPricingRuleRepo) list(ctx context.Context, filter bson.M) ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode pricing rules: %w", err)
	}
	return rules, nil
}

func (r *MongoPricingRuleRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rangeIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "apartment_id", Value: 1},
			{Key: "start_date", Value: 1},
			{Key: "end_date", Value: 1},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{rangeIdx})
	return err
}
