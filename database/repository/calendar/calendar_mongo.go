package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayhaven/database"
	"stayhaven/models"
)

// MongoCalendarRepo implements CalendarRepository using MongoDB. Uniqueness of
// (apartment_id, date) is enforced by an index, so concurrent writers cannot
// produce two records for the same date.
type MongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo creates a new instance of CalendarRepository using MongoDB.
func NewMongoCalendarRepo() CalendarRepository {
	coll := database.DB().Collection("calendar_days")
	repo := &MongoCalendarRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("calendar repo index creation failed: %v", err))
	}
	return repo
}

func (r *MongoCalendarRepo) GetRange(ctx context.Context, apartmentID string, from, to time.Time) ([]models.CalendarDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"apartment_id": apartmentID,
		"date":         bson.M{"$gte": models.DateOnly(from), "$lt": models.DateOnly(to)},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar range: %w", err)
	}
	defer cursor.Close(ctx)

	var days []models.CalendarDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("failed to decode calendar days: %w", err)
	}
	return days, nil
}

// SetRange upserts one record per date. Dates currently owned by a booking
// hold are skipped: the hold already makes them unavailable and will restore
// the open-world default on release.
func (r *MongoCalendarRepo) SetRange(ctx context.Context, apartmentID string, from, to time.Time, available bool, minStay, maxStay *int, note string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set := bson.M{"available": available}
	unset := bson.M{"hold_booking_id": ""}
	if available {
		unset["block_type"] = ""
	} else {
		set["block_type"] = models.BlockManual
	}
	if minStay != nil {
		set["min_stay"] = *minStay
	} else {
		unset["min_stay"] = ""
	}
	if maxStay != nil {
		set["max_stay"] = *maxStay
	} else {
		unset["max_stay"] = ""
	}
	if note != "" {
		set["note"] = note
	} else {
		unset["note"] = ""
	}

	var dates []time.Time
	models.EachDay(from, to, func(d time.Time) { dates = append(dates, d) })

	for _, d := range dates {
		filter := bson.M{
			"apartment_id": apartmentID,
			"date":         d,
			"block_type":   bson.M{"$ne": models.BlockBookingHold},
		}
		update := bson.M{"$set": set, "$unset": unset}
		_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// A booking hold owns this date; leave it alone.
				continue
			}
			return fmt.Errorf("failed to upsert calendar day %s: %w", d.Format(models.DateFormat), err)
		}
	}
	return nil
}

func (r *MongoCalendarRepo) DeleteManualRange(ctx context.Context, apartmentID string, from, to time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"apartment_id": apartmentID,
		"date":         bson.M{"$gte": models.DateOnly(from), "$lt": models.DateOnly(to)},
		"block_type":   bson.M{"$ne": models.BlockBookingHold},
	}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete calendar range: %w", err)
	}
	return nil
}

// CommitHold writes the hold date by date: constraint-only records flip to
// unavailable in place, untouched dates get a fresh hold record. Any date that
// is already unavailable aborts the whole commit, and the partial writes are
// rolled back through ReleaseHold so the store is unchanged.
func (r *MongoCalendarRepo) CommitHold(ctx context.Context, apartmentID string, from, to time.Time, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var dates []time.Time
	models.EachDay(from, to, func(d time.Time) { dates = append(dates, d) })

	for _, d := range dates {
		filter := bson.M{
			"apartment_id": apartmentID,
			"date":         d,
			"available":    true,
		}
		update := bson.M{"$set": bson.M{
			"available":       false,
			"block_type":      models.BlockBookingHold,
			"hold_booking_id": bookingID,
		}}
		res, err := r.coll.UpdateOne(ctx, filter, update)
		if err != nil {
			_ = r.releaseHold(ctx, bookingID)
			return fmt.Errorf("failed to commit hold on %s: %w", d.Format(models.DateFormat), err)
		}
		if res.MatchedCount > 0 {
			continue
		}

		day := models.CalendarDay{
			ApartmentID:   apartmentID,
			Date:          d,
			Available:     false,
			BlockType:     models.BlockBookingHold,
			HoldBookingID: bookingID,
		}
		if _, err := r.coll.InsertOne(ctx, day); err != nil {
			_ = r.releaseHold(ctx, bookingID)
			if mongo.IsDuplicateKeyError(err) {
				// An unavailable record (owner block or competing hold)
				// already covers this date.
				return ErrDayBlocked
			}
			return fmt.Errorf("failed to insert hold on %s: %w", d.Format(models.DateFormat), err)
		}
	}
	return nil
}

func (r *MongoCalendarRepo) ReleaseHold(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.releaseHold(ctx, bookingID)
}

func (r *MongoCalendarRepo) releaseHold(ctx context.Context, bookingID string) error {
	// Records that also carry owner constraints go back to available with the
	// hold stripped; pure hold records are deleted outright.
	constrained := bson.M{
		"hold_booking_id": bookingID,
		"$or": bson.A{
			bson.M{"min_stay": bson.M{"$exists": true}},
			bson.M{"max_stay": bson.M{"$exists": true}},
			bson.M{"note": bson.M{"$exists": true, "$ne": ""}},
		},
	}
	update := bson.M{
		"$set":   bson.M{"available": true},
		"$unset": bson.M{"block_type": "", "hold_booking_id": ""},
	}
	if _, err := r.coll.UpdateMany(ctx, constrained, update); err != nil {
		return fmt.Errorf("failed to restore constrained hold days: %w", err)
	}
	if _, err := r.coll.DeleteMany(ctx, bson.M{"hold_booking_id": bookingID}); err != nil {
		return fmt.Errorf("failed to delete hold days: %w", err)
	}
	return nil
}
