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

type OrderStore struct {
	orderCollection *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{orderCollection: OpenCollection(db, OrderCollection)}
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	_, err := s.orderCollection.InsertOne(ctx, order)
	return translate(err)
}

func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := s.orderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.orderCollection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// List returns one page of orders, newest first, with the customer joined in.
func (s *OrderStore) List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.OrderWithCustomer, int64, error) {
	query := bson.D{}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "orderStatus", Value: filter.Status})
	}

	matchStage := bson.D{{Key: "$match", Value: query}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: page.Skip()}}
	limitStage := bson.D{{Key: "$limit", Value: int64(page.Limit)}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: UserCollection},
		{Key: "localField", Value: "user"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "customer"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$customer"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}

	cursor, err := s.orderCollection.Aggregate(ctx, mongo.Pipeline{
		matchStage, sortStage, skipStage, limitStage, lookupStage, unwindStage,
	})
	if err != nil {
		return nil, 0, err
	}
	orders := []models.OrderWithCustomer{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	total, err := s.orderCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// SetStatus overwrites orderStatus and records the change in the status history.
func (s *OrderStore) SetStatus(ctx context.Context, id primitive.ObjectID, change models.StatusChange) (*models.Order, error) {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "orderStatus", Value: change.Status},
			{Key: "updatedAt", Value: change.Changed_at},
		}},
		{Key: "$push", Value: bson.D{{Key: "statusHistory", Value: change}}},
	}
	return s.findOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

// ConfirmPayment marks the order paid and confirmed. changed is false when the
// order was already paid, in which case nothing is written.
func (s *OrderStore) ConfirmPayment(ctx context.Context, id primitive.ObjectID, at time.Time) (order *models.Order, changed bool, err error) {
	change := models.StatusChange{Status: models.StatusConfirmed, Changed_at: at}
	filter := bson.M{"_id": id, "paymentStatus": bson.M{"$ne": models.PaymentCompleted}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "paymentStatus", Value: models.PaymentCompleted},
			{Key: "orderStatus", Value: models.StatusConfirmed},
			{Key: "updatedAt", Value: at},
		}},
		{Key: "$push", Value: bson.D{{Key: "statusHistory", Value: change}}},
	}
	order, err = s.findOneAndUpdate(ctx, filter, update)
	if err == nil {
		return order, true, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}
	order, err = s.FindByID(ctx, id)
	return order, false, err
}

// FailPayment records a failed capture on an order whose payment is still
// pending. changed is false when the order was already failed or paid.
func (s *OrderStore) FailPayment(ctx context.Context, id primitive.ObjectID, at time.Time) (*models.Order, bool, error) {
	filter := bson.M{"_id": id, "paymentStatus": models.PaymentPending}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "paymentStatus", Value: models.PaymentFailed},
		{Key: "updatedAt", Value: at},
	}}}
	order, err := s.findOneAndUpdate(ctx, filter, update)
	if err == nil {
		return order, true, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}
	order, err = s.FindByID(ctx, id)
	return order, false, err
}

func (s *OrderStore) findOneAndUpdate(ctx context.Context, filter interface{}, update interface{}) (*models.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	if err := s.orderCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}
