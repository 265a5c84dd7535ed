package database

import (
	"context"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationListLimit = 100

type NotificationStore struct {
	notificationCollection *mongo.Collection
}

func NewNotificationStore(db *mongo.Database) *NotificationStore {
	return &NotificationStore{notificationCollection: OpenCollection(db, NotificationCollection)}
}

func (s *NotificationStore) Insert(ctx context.Context, n *models.Notification) error {
	_, err := s.notificationCollection.InsertOne(ctx, n)
	return translate(err)
}

func (s *NotificationStore) List(ctx context.Context, role string, unreadOnly bool) ([]models.Notification, error) {
	filter := bson.M{"userRole": role}
	if unreadOnly {
		filter["isRead"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(notificationListLimit)
	cursor, err := s.notificationCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *NotificationStore) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.notificationCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.D{{Key: "$set", Value: bson.D{{Key: "isRead", Value: true}}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
