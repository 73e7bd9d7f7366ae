package apartmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayhaven/database"
	"stayhaven/models"
)

// MongoApartmentRepo implements ApartmentRepository using MongoDB.
type MongoApartmentRepo struct {
	coll *mongo.Collection
}

// NewMongoApartmentRepo creates a new instance of ApartmentRepository using MongoDB.
func NewMongoApartmentRepo() ApartmentRepository {
	coll := database.DB().Collection("apartments")
	return &MongoApartmentRepo{coll: coll}
}

func (r *MongoApartmentRepo) GetByID(id string) (*models.Apartment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var apt models.Apartment
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&apt); err != nil {
		return nil, fmt.Errorf("failed to fetch apartment with id %s: %w", id, err)
	}
	return &apt, nil
}

func (r *MongoApartmentRepo) GetBySlug(slug string) (*models.Apartment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var apt models.Apartment
	filter := bson.M{"slug": slug}
	if err := r.coll.FindOne(ctx, filter).Decode(&apt); err != nil {
		return nil, fmt.Errorf("failed to fetch apartment with slug %s: %w", slug, err)
	}
	return &apt, nil
}

func (r *MongoApartmentRepo) GetAllActive() ([]models.Apartment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve apartments: %w", err)
	}
	defer cursor.Close(ctx)
	var apartments []models.Apartment
	if err := cursor.All(ctx, &apartments); err != nil {
		return nil, fmt.Errorf("failed to decode apartments: %w", err)
	}
	return apartments, nil
}
