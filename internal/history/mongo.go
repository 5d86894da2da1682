package history

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

const collectionName = "review_events"

// MongoRecorder keeps review events in a MongoDB collection.
type MongoRecorder struct {
	db *mongo.Database
}

func NewMongoRecorder(db *mongo.Database) *MongoRecorder {
	return &MongoRecorder{db: db}
}

// EnsureIndexes creates the indexes the list query relies on.
func (r *MongoRecorder) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(collectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "reviewed_at", Value: -1}}},
	})
	return err
}

func (r *MongoRecorder) Record(ctx context.Context, ev models.ReviewEvent) error {
	if ev.ID.IsZero() {
		ev.ID = primitive.NewObjectID()
	}
	_, err := r.db.Collection(collectionName).InsertOne(ctx, ev)
	return err
}

func (r *MongoRecorder) List(ctx context.Context, userID int64, limit, skip int) ([]models.ReviewEvent, int64, error) {
	filter := bson.M{"user_id": userID}
	coll := r.db.Collection(collectionName)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.M{"reviewed_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	events := []models.ReviewEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *MongoRecorder) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.Collection(collectionName).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
