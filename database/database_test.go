package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRetryDelay(t *testing.T) {
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 10 * time.Second, 10 * time.Second}
	for attempt, d := range want {
		assert.Equal(t, d, RetryDelay(attempt), "attempt %d", attempt)
	}
	assert.Equal(t, 10*time.Second, RetryDelay(80))
}

func TestDBinstanceRequiresURI(t *testing.T) {
	_, err := DBinstance(context.Background(), "", 1)
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(mongo.ErrNoDocuments), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("find: %w", mongo.ErrNoDocuments)), ErrNotFound)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, translate(dup), ErrDuplicateKey)

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}

func TestSinceFilter(t *testing.T) {
	assert.Equal(t, bson.D{}, sinceFilter(nil))

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}}}, sinceFilter(&since))
}

func TestOrderReviewsPipelineJoinsOnlyAuthorName(t *testing.T) {
	orderID := primitive.NewObjectID()
	pipeline := orderReviewsPipeline(orderID)

	assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{{Key: "order", Value: orderID}}}}, pipeline[0])
	var lookups []bson.D
	for _, stage := range pipeline {
		if stage[0].Key == "$lookup" {
			lookups = append(lookups, stage[0].Value.(bson.D))
		}
	}
	require.Len(t, lookups, 1)
	assert.Equal(t, UserCollection, lookups[0].Map()["from"])
	inner := lookups[0].Map()["pipeline"].(mongo.Pipeline)
	assert.Equal(t, bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}}}}, inner[len(inner)-1])

	for _, stage := range pipeline {
		assert.NotContains(t, fmt.Sprint(stage), "orderDetail")
	}
}
