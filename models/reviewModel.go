package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminResponse struct {
	Text         string             `bson:"text" json:"text"`
	Responded_at time.Time          `bson:"respondedAt" json:"respondedAt"`
	Responded_by primitive.ObjectID `bson:"respondedBy" json:"respondedBy"`
}

type Review struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Order         primitive.ObjectID `bson:"order" json:"order"`
	Rating        int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment       string             `bson:"comment" json:"comment" validate:"required,max=500"`
	Images        []string           `bson:"images" json:"images" validate:"omitempty,dive,imageurl"`
	AdminResponse *AdminResponse     `bson:"adminResponse,omitempty" json:"adminResponse,omitempty"`
	Created_at    time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (r *Review) HasAdminResponse() bool {
	return r.AdminResponse != nil && r.AdminResponse.Text != ""
}

type ReviewUser struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
}

type ReviewOrder struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	OrderNumber string             `bson:"orderNumber" json:"orderNumber"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
}

// ReviewView is a review with its author and order summaries joined in.
type ReviewView struct {
	Review      `bson:",inline"`
	Author      *ReviewUser  `bson:"author,omitempty" json:"author,omitempty"`
	OrderDetail *ReviewOrder `bson:"orderDetail,omitempty" json:"orderDetail,omitempty"`
}

type CreateReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
}

type ReviewUpdate struct {
	Rating  *int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string   `json:"comment" validate:"omitempty,max=500"`
	Images  *[]string `json:"images" validate:"omitempty,dive,imageurl"`
}

type RespondRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type ReviewFilter struct {
	Rating int
}

type ReviewStats struct {
	AverageRating float64        `json:"averageRating"`
	TotalReviews  int64          `json:"totalReviews"`
	RatingCounts  map[string]int `json:"ratingCounts"`
}

// NewReviewStats returns zeroed stats with every star bucket present.
func NewReviewStats() ReviewStats {
	return ReviewStats{RatingCounts: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}}
}
