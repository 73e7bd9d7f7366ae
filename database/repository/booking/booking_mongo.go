package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayhaven/database"
	"stayhaven/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("booking repo index creation failed: %v", err))
	}
	return repo
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	booking.CheckIn = models.DateOnly(booking.CheckIn)
	booking.CheckOut = models.DateOnly(booking.CheckOut)
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"guest_id": guestID})
}

func (r *MongoBookingRepo) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *MongoBookingRepo) FindConfirmedOverlapping(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) ([]models.Booking, error) {
	// Half-open interval intersection: in_A < out_B AND in_B < out_A.
	filter := bson.M{
		"apartment_id": apartmentID,
		"status":       models.StatusConfirmed,
		"check_in":     bson.M{"$lt": models.DateOnly(checkOut)},
		"check_out":    bson.M{"$gt": models.DateOnly(checkIn)},
	}
	return r.list(ctx, filter)
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &updated, nil
}

func (r *MongoBookingRepo) UpdatePaymentStatus(ctx context.Context, id string, to models.PaymentStatus) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"payment_status": to, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to update booking %s payment status: %w", id, err)
	}
	return &updated, nil
}

func (r *MongoBookingRepo) ListConfirmedEndingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status":    models.StatusConfirmed,
		"check_out": bson.M{"$lt": models.DateOnly(cutoff)},
	}
	return r.list(ctx, filter)
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	overlapIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "apartment_id", Value: 1},
			{Key: "status", Value: 1},
			{Key: "check_in", Value: 1},
			{Key: "check_out", Value: 1},
		},
	}
	guestIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "guest_id", Value: 1}, {Key: "created_at", Value: -1}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, overlapIdx, guestIdx})
	return err
}
