package database

import (
	"context"
	"strconv"
	"time"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewStore struct {
	reviewCollection *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *ReviewStore {
	return &ReviewStore{reviewCollection: OpenCollection(db, ReviewCollection)}
}

func (s *ReviewStore) Insert(ctx context.Context, review *models.Review) error {
	_, err := s.reviewCollection.InsertOne(ctx, review)
	return translate(err)
}

func (s *ReviewStore) Exists(ctx context.Context, userID, orderID primitive.ObjectID) (bool, error) {
	count, err := s.reviewCollection.CountDocuments(ctx, bson.M{"user": userID, "order": orderID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ReviewStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	if err := s.reviewCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *ReviewStore) Update(ctx context.Context, id primitive.ObjectID, upd models.ReviewUpdate, at time.Time) error {
	var updateObj primitive.D
	if upd.Rating != nil {
		updateObj = append(updateObj, bson.E{Key: "rating", Value: *upd.Rating})
	}
	if upd.Comment != nil {
		updateObj = append(updateObj, bson.E{Key: "comment", Value: *upd.Comment})
	}
	if upd.Images != nil {
		updateObj = append(updateObj, bson.E{Key: "images", Value: *upd.Images})
	}
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: at})
	return s.updateOne(ctx, id, bson.D{{Key: "$set", Value: updateObj}})
}

// Respond sets the whole adminResponse sub-document in a single write.
func (s *ReviewStore) Respond(ctx context.Context, id primitive.ObjectID, resp models.AdminResponse) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "adminResponse", Value: resp},
		{Key: "updatedAt", Value: resp.Responded_at},
	}}}
	return s.updateOne(ctx, id, update)
}

func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.reviewCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReviewStore) FindView(ctx context.Context, id primitive.ObjectID) (*models.ReviewView, error) {
	views, err := s.aggregateViews(ctx, bson.D{{Key: "_id", Value: id}}, nil)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

func (s *ReviewStore) List(ctx context.Context, filter models.ReviewFilter, page models.Page) ([]models.ReviewView, int64, error) {
	query := reviewQuery(filter)
	views, err := s.aggregateViews(ctx, query, &page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reviewCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *ReviewStore) ListByOrder(ctx context.Context, orderID primitive.ObjectID) ([]models.ReviewView, error) {
	return s.runViews(ctx, orderReviewsPipeline(orderID))
}

func (s *ReviewStore) ListAll(ctx context.Context) ([]models.ReviewView, error) {
	return s.aggregateViews(ctx, bson.D{}, nil)
}

func (s *ReviewStore) Stats(ctx context.Context) (models.ReviewStats, error) {
	stats := models.NewReviewStats()
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$rating"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	cursor, err := s.reviewCollection.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		return stats, err
	}
	var buckets []struct {
		Rating int `bson:"_id"`
		Count  int `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return stats, err
	}
	var sum int
	for _, b := range buckets {
		stats.RatingCounts[strconv.Itoa(b.Rating)] += b.Count
		stats.TotalReviews += int64(b.Count)
		sum += b.Rating * b.Count
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats, nil
}

func reviewQuery(filter models.ReviewFilter) bson.D {
	if filter.Rating > 0 {
		return bson.D{{Key: "rating", Value: filter.Rating}}
	}
	return bson.D{}
}

// aggregateViews joins author and order summaries onto matching reviews, newest first.
func (s *ReviewStore) aggregateViews(ctx context.Context, match bson.D, page *models.Page) ([]models.ReviewView, error) {
	return s.runViews(ctx, reviewViewsPipeline(match, page))
}

func (s *ReviewStore) runViews(ctx context.Context, pipeline mongo.Pipeline) ([]models.ReviewView, error) {
	cursor, err := s.reviewCollection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, err
	}
	views := []models.ReviewView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func reviewViewsPipeline(match bson.D, page *models.Page) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	if page != nil {
		pipeline = append(pipeline,
			bson.D{{Key: "$skip", Value: page.Skip()}},
			bson.D{{Key: "$limit", Value: int64(page.Limit)}},
		)
	}
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UserCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$author"}, {Key: "preserveNullAndEmptyArrays", Value: true}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: OrderCollection},
			{Key: "localField", Value: "order"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "orderDetail"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$orderDetail"}, {Key: "preserveNullAndEmptyArrays", Value: true}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "author.password", Value: 0},
			{Key: "author.otp", Value: 0},
			{Key: "orderDetail.items", Value: 0},
			{Key: "orderDetail.statusHistory", Value: 0},
		}}},
	)
}

// orderReviewsPipeline is served to any signed-in user, so only the author's
// name is joined and the order itself is left out.
func orderReviewsPipeline(orderID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "order", Value: orderID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UserCollection},
			{Key: "let", Value: bson.D{{Key: "uid", Value: "$user"}}},
			{Key: "pipeline", Value: mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$uid"}}}}}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}}}},
			}},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$author"}, {Key: "preserveNullAndEmptyArrays", Value: true}}}},
	}
}

func (s *ReviewStore) updateOne(ctx context.Context, id primitive.ObjectID, update interface{}) error {
	result, err := s.reviewCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
