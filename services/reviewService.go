package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shawon-burger/database"
	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EditWindow is how long an author may change their own review.
const EditWindow = 24 * time.Hour

type ReviewService struct {
	reviews ReviewStore
	orders  OrderStore
	now     func() time.Time
}

func NewReviewService(reviews ReviewStore, orders OrderStore) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders, now: time.Now}
}

// ReviewPage is the admin listing together with rating statistics.
type ReviewPage struct {
	models.PagedResult[models.ReviewView]
	Stats models.ReviewStats
}

func (s *ReviewService) Create(ctx context.Context, userID, orderID primitive.ObjectID, req models.CreateReviewRequest) (*models.ReviewView, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	if order.User != userID {
		return nil, fmt.Errorf("Order %w", ErrNotFound)
	}

	exists, err := s.reviews.Exists(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewExists
	}

	now := s.now()
	review := &models.Review{
		ID:         primitive.NewObjectID(),
		User:       userID,
		Order:      orderID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		Images:     req.Images,
		Created_at: now,
		Updated_at: now,
	}
	if review.Images == nil {
		review.Images = []string{}
	}
	if err := validateStruct(review); err != nil {
		return nil, err
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return s.view(ctx, review.ID)
}

// Update lets the author edit within EditWindow of posting.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID primitive.ObjectID, upd models.ReviewUpdate) (*models.ReviewView, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, notFound(err, "Review")
	}
	if review.User != userID {
		return nil, ErrForbidden
	}
	if s.now().Sub(review.Created_at) > EditWindow {
		return nil, ErrReviewLocked
	}
	if upd.Comment != nil {
		trimmed := strings.TrimSpace(*upd.Comment)
		if trimmed == "" {
			return nil, validationErrorf("Comment is required")
		}
		upd.Comment = &trimmed
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	if err := s.reviews.Update(ctx, reviewID, upd, s.now()); err != nil {
		return nil, notFound(err, "Review")
	}
	return s.view(ctx, reviewID)
}

func (s *ReviewService) Respond(ctx context.Context, reviewID, adminID primitive.ObjectID, req models.RespondRequest) (*models.ReviewView, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	resp := models.AdminResponse{Text: req.Text, Responded_at: s.now(), Responded_by: adminID}
	if err := s.reviews.Respond(ctx, reviewID, resp); err != nil {
		return nil, notFound(err, "Review")
	}
	return s.view(ctx, reviewID)
}

func (s *ReviewService) Delete(ctx context.Context, reviewID primitive.ObjectID) error {
	return notFound(s.reviews.Delete(ctx, reviewID), "Review")
}

func (s *ReviewService) List(ctx context.Context, filter models.ReviewFilter, page models.Page) (*ReviewPage, error) {
	if filter.Rating != 0 && (filter.Rating < 1 || filter.Rating > 5) {
		return nil, validationErrorf("rating must be between 1 and 5")
	}
	reviews, total, err := s.reviews.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	stats, err := s.reviews.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &ReviewPage{
		PagedResult: models.PagedResult[models.ReviewView]{
			Items:       reviews,
			Total:       total,
			TotalPages:  page.TotalPages(total),
			CurrentPage: page.Number,
		},
		Stats: stats,
	}, nil
}

// ListByOrder is open to any signed-in user; authors are reduced to their names.
func (s *ReviewService) ListByOrder(ctx context.Context, orderID primitive.ObjectID) ([]models.ReviewView, error) {
	views, err := s.reviews.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].OrderDetail = nil
		if a := views[i].Author; a != nil {
			views[i].Author = &models.ReviewUser{ID: a.ID, Name: a.Name}
		}
	}
	return views, nil
}

// ExportAll returns every review, newest first, for the CSV download.
func (s *ReviewService) ExportAll(ctx context.Context) ([]models.ReviewView, error) {
	return s.reviews.ListAll(ctx)
}

func (s *ReviewService) view(ctx context.Context, id primitive.ObjectID) (*models.ReviewView, error) {
	v, err := s.reviews.FindView(ctx, id)
	if err != nil {
		return nil, notFound(err, "Review")
	}
	return v, nil
}
