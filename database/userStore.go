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

type UserStore struct {
	userCollection *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{userCollection: OpenCollection(db, UserCollection)}
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.userCollection.InsertOne(ctx, user)
	return translate(err)
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) SetOTP(ctx context.Context, id primitive.ObjectID, otp models.OTP) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "otp", Value: otp},
		{Key: "updatedAt", Value: time.Now()},
	}}}
	return s.updateOne(ctx, id, update)
}

func (s *UserStore) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "isVerified", Value: true}, {Key: "updatedAt", Value: time.Now()}}},
		{Key: "$unset", Value: bson.D{{Key: "otp", Value: ""}}},
	}
	return s.updateOne(ctx, id, update)
}

func (s *UserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd models.ProfileUpdate) (*models.User, error) {
	var updateObj primitive.D
	if upd.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Phone != nil {
		updateObj = append(updateObj, bson.E{Key: "phone", Value: *upd.Phone})
	}
	if upd.Address != nil {
		updateObj = append(updateObj, bson.E{Key: "address", Value: *upd.Address})
	}
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: time.Now()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.userCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: updateObj}}, opts).Decode(&user)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context, page models.Page) ([]models.User, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit)).
		SetProjection(bson.D{{Key: "password", Value: 0}, {Key: "otp", Value: 0}})

	cursor, err := s.userCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	total, err := s.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	return s.userCollection.CountDocuments(ctx, bson.M{"role": role})
}

func (s *UserStore) updateOne(ctx context.Context, id primitive.ObjectID, update interface{}) error {
	result, err := s.userCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
