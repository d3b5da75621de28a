package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spectrumsync/backend/internal/events"
	"github.com/spectrumsync/backend/internal/models"
)

// Events handles event persistence in a MongoDB collection. Reads and
// deletes are always scoped to the owning user.
type Events struct {
	col *mongo.Collection
}

func NewEvents(db *mongo.Database, collection string) *Events {
	return &Events{col: db.Collection(collection)}
}

func (s *Events) Insert(ctx context.Context, event *models.Event) error {
	if _, err := s.col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (s *Events) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	evs := []models.Event{}
	if err := cur.All(ctx, &evs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return evs, nil
}

func (s *Events) GetOwned(ctx context.Context, id, userID string) (*models.Event, error) {
	var ev models.Event
	err := s.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&ev)
	if err == mongo.ErrNoDocuments {
		return nil, events.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &ev, nil
}

func (s *Events) DeleteOwned(ctx context.Context, id, userID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return events.ErrEventNotFound
	}
	return nil
}

var _ events.Store = (*Events)(nil)
