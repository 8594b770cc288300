// internal/app/store/savedfilters/savedfilterstore.go
package savedfilterstore

import (
	"context"
	"errors"
	"time"

	"github.com/breezehq/breeze-console/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists saved list filters. This is the only console-owned
// collection; everything else lives behind the platform API.
type Store struct {
	c *mongo.Collection
}

var ErrDuplicateFilter = errors.New("a saved filter with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("saved_filters")}
}

// Create stores a new filter. Duplicate names within the same entity are
// rejected (enforced by the unique entity+name_ci index).
func (s *Store) Create(ctx context.Context, f models.SavedFilter) (models.SavedFilter, error) {
	f.ID = primitive.NewObjectID()
	f.NameCI = text.Fold(f.Name)
	f.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, f)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.SavedFilter{}, ErrDuplicateFilter
		}
		return models.SavedFilter{}, err
	}
	return f, nil
}

// GetByID loads one saved filter.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.SavedFilter, error) {
	var f models.SavedFilter
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		return models.SavedFilter{}, err
	}
	return f, nil
}

// List returns saved filters ordered by folded name. q, when non-empty, is a
// case-insensitive prefix match on the name; entity, when non-empty, narrows
// to one list page.
func (s *Store) List(ctx context.Context, entity, q string) ([]models.SavedFilter, error) {
	filter := bson.M{}
	if entity != "" {
		filter["entity"] = entity
	}
	if fq := text.Fold(q); fq != "" {
		filter["name_ci"] = bson.M{"$gte": fq, "$lt": fq + "￿"}
	}

	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var filters []models.SavedFilter
	if err := cur.All(ctx, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

// Delete removes a saved filter by ID. Returns the number deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique entity+name_ci index. Called from
// bootstrap's schema hook.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("saved_filters").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "entity", Value: 1},
			{Key: "name_ci", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
