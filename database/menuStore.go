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

type MenuStore struct {
	menuCollection *mongo.Collection
}

func NewMenuStore(db *mongo.Database) *MenuStore {
	return &MenuStore{menuCollection: OpenCollection(db, MenuCollection)}
}

func (s *MenuStore) List(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := s.menuCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	cursor, err := s.menuCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuStore) Insert(ctx context.Context, item *models.MenuItem) error {
	_, err := s.menuCollection.InsertOne(ctx, item)
	return translate(err)
}

func (s *MenuStore) Update(ctx context.Context, id primitive.ObjectID, upd models.MenuItemUpdate) (*models.MenuItem, error) {
	var updateObj primitive.D
	if upd.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *upd.Description})
	}
	if upd.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *upd.Price})
	}
	if upd.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *upd.Category})
	}
	if upd.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: *upd.Image})
	}
	if upd.InStock != nil {
		updateObj = append(updateObj, bson.E{Key: "inStock", Value: *upd.InStock})
	}
	if upd.NutritionalInfo != nil {
		updateObj = append(updateObj, bson.E{Key: "nutritionalInfo", Value: *upd.NutritionalInfo})
	}
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: time.Now()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.MenuItem
	err := s.menuCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: updateObj}}, opts).Decode(&item)
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *MenuStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.menuCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuStore) Count(ctx context.Context) (int64, error) {
	return s.menuCollection.CountDocuments(ctx, bson.M{})
}
