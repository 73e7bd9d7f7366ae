package calendarRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the store relies on. The unique
// (apartment_id, date) index is what makes concurrent hold commits safe.
func (r *MongoCalendarRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dayIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "apartment_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	holdIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "hold_booking_id", Value: 1}},
		Options: options.Index().SetPartialFilterExpression(bson.M{
			"hold_booking_id": bson.M{"$exists": true},
		}),
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{dayIdx, holdIdx})
	return err
}
