package database

import (
	"context"
	"time"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardStore runs the read-only rollups over the order and user collections.
type DashboardStore struct {
	orderCollection *mongo.Collection
	userCollection  *mongo.Collection
}

func NewDashboardStore(db *mongo.Database) *DashboardStore {
	return &DashboardStore{
		orderCollection: OpenCollection(db, OrderCollection),
		userCollection:  OpenCollection(db, UserCollection),
	}
}

func sinceFilter(since *time.Time) bson.D {
	if since == nil {
		return bson.D{}
	}
	return bson.D{{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: *since}}}}
}

func (s *DashboardStore) CountOrders(ctx context.Context, since *time.Time) (int64, error) {
	return s.orderCollection.CountDocuments(ctx, sinceFilter(since))
}

func (s *DashboardStore) SumRevenue(ctx context.Context, since *time.Time) (float64, error) {
	matchStage := bson.D{{Key: "$match", Value: sinceFilter(since)}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$totalAmount", 0}}}}}},
	}}}
	cursor, err := s.orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return 0, err
	}
	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

func (s *DashboardStore) CountCustomers(ctx context.Context) (int64, error) {
	return s.userCollection.CountDocuments(ctx, bson.M{"role": models.RoleCustomer})
}

func (s *DashboardStore) StatusCounts(ctx context.Context) (map[string]int64, error) {
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$orderStatus"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	cursor, err := s.orderCollection.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (s *DashboardStore) PopularItems(ctx context.Context, limit int) ([]models.PopularItem, error) {
	unwindStage := bson.D{{Key: "$unwind", Value: "$items"}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$items.name"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$multiply", Value: bson.A{"$items.price", "$items.quantity"}}}}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}}
	limitStage := bson.D{{Key: "$limit", Value: int64(limit)}}

	cursor, err := s.orderCollection.Aggregate(ctx, mongo.Pipeline{unwindStage, groupStage, sortStage, limitStage})
	if err != nil {
		return nil, err
	}
	items := []models.PopularItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DashboardStore) DailyStats(ctx context.Context, since time.Time, loc *time.Location) ([]models.DailyStat, error) {
	matchStage := bson.D{{Key: "$match", Value: sinceFilter(&since)}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
			{Key: "format", Value: "%Y-%m-%d"},
			{Key: "date", Value: "$createdAt"},
			{Key: "timezone", Value: loc.String()},
		}}}},
		{Key: "orders", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$totalAmount", 0}}}}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}

	cursor, err := s.orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage, sortStage})
	if err != nil {
		return nil, err
	}
	stats := []models.DailyStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
