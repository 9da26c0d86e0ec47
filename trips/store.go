package trips

import (
	"context"
	"errors"
	"fmt"

	"trippy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrInvalidID means the caller-supplied id is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid trip id")
	// ErrNotFound means no trip exists under the given id.
	ErrNotFound = errors.New("trip not found")
)

// TripStore is the document-store collaborator behind the trip
// endpoints. Handlers receive it injected so they stay testable without
// a live database; a nil store means persistence is not configured.
type TripStore interface {
	Create(ctx context.Context, trip models.SavedTrip) (string, error)
	List(ctx context.Context, limit int64) ([]models.SavedTrip, error)
	Get(ctx context.Context, id string) (models.SavedTrip, error)
	Collections(ctx context.Context) ([]string, error)
}

// MongoTripStore keeps saved trips in the "trips" collection.
type MongoTripStore struct {
	db *mongo.Database
}

func NewMongoTripStore(db *mongo.Database) *MongoTripStore {
	return &MongoTripStore{db: db}
}

func (s *MongoTripStore) collection() *mongo.Collection {
	return s.db.Collection("trips")
}

func (s *MongoTripStore) Create(ctx context.Context, trip models.SavedTrip) (string, error) {
	result, err := s.collection().InsertOne(ctx, trip)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns up to limit trips, newest first.
func (s *MongoTripStore) List(ctx context.Context, limit int64) ([]models.SavedTrip, error) {
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var saved []models.SavedTrip
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *MongoTripStore) Get(ctx context.Context, id string) (models.SavedTrip, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.SavedTrip{}, ErrInvalidID
	}

	var trip models.SavedTrip
	err = s.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return models.SavedTrip{}, ErrNotFound
	}
	if err != nil {
		return models.SavedTrip{}, err
	}
	return trip, nil
}

// Collections lists the collection names of the backing database. The
// diagnostics endpoint uses it as a connectivity probe.
func (s *MongoTripStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}
