package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	calendarRepo "stayhaven/database/repository/calendar"
	"stayhaven/models"
)

// ConfirmWithHold runs the status flip and the calendar hold commit in a
// single MongoDB transaction. The status update is conditional on the booking
// still being PENDING, so a concurrent confirm of the same booking loses
// cleanly with ErrStatusConflict, and a blocked date aborts everything with
// calendarRepo.ErrDayBlocked.
func (r *MongoBookingRepo) ConfirmWithHold(ctx context.Context, booking *models.Booking, cal calendarRepo.CalendarRepository) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": booking.ID, "status": models.StatusPending}
		update := bson.M{"$set": bson.M{
			"status":     models.StatusConfirmed,
			"updated_at": time.Now().UTC(),
		}}
		res, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("confirm status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrStatusConflict
		}

		return cal.CommitHold(sc, booking.ApartmentID, booking.CheckIn, booking.CheckOut, booking.ID)
	}

	return runInTransaction(ctx, sess, txnFn)
}

// CancelWithRelease runs the CONFIRMED -> cancelled status flip and the
// calendar hold release in a single MongoDB transaction. A failed release
// aborts the flip too, so the booking stays CONFIRMED and a retried cancel
// releases the hold again instead of leaving its dates blocked.
func (r *MongoBookingRepo) CancelWithRelease(ctx context.Context, booking *models.Booking, to models.BookingStatus, cal calendarRepo.CalendarRepository) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": booking.ID, "status": models.StatusConfirmed}
		update := bson.M{"$set": bson.M{
			"status":     to,
			"updated_at": time.Now().UTC(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := r.coll.FindOneAndUpdate(sc, filter, update, opts).Decode(&updated); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrStatusConflict
			}
			return fmt.Errorf("cancel status update failed: %w", err)
		}

		return cal.ReleaseHold(sc, booking.ID)
	}

	if err := runInTransaction(ctx, sess, txnFn); err != nil {
		return nil, err
	}
	return &updated, nil
}

func runInTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
