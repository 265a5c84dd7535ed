package database

import (
	"context"
	"time"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ComboStore struct {
	comboCollection *mongo.Collection
}

func NewComboStore(db *mongo.Database) *ComboStore {
	return &ComboStore{comboCollection: OpenCollection(db, ComboCollection)}
}

func (s *ComboStore) List(ctx context.Context) ([]models.ComboDeal, error) {
	return s.find(ctx, bson.M{})
}

func (s *ComboStore) ListAvailable(ctx context.Context, at time.Time) ([]models.ComboDeal, error) {
	return s.find(ctx, bson.M{
		"active":     true,
		"validFrom":  bson.M{"$lte": at},
		"validUntil": bson.M{"$gte": at},
	})
}

func (s *ComboStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ComboDeal, error) {
	var combo models.ComboDeal
	if err := s.comboCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&combo); err != nil {
		return nil, translate(err)
	}
	return &combo, nil
}

func (s *ComboStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ComboDeal, error) {
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *ComboStore) Insert(ctx context.Context, combo *models.ComboDeal) error {
	_, err := s.comboCollection.InsertOne(ctx, combo)
	return translate(err)
}

func (s *ComboStore) Replace(ctx context.Context, combo *models.ComboDeal) error {
	result, err := s.comboCollection.ReplaceOne(ctx, bson.M{"_id": combo.ID}, combo)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ComboStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.comboCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ComboStore) find(ctx context.Context, filter bson.M) ([]models.ComboDeal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.comboCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	combos := []models.ComboDeal{}
	if err := cursor.All(ctx, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}
