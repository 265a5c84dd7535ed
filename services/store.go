package services

import (
	"context"
	"time"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The interfaces below are satisfied by the Mongo stores in package database.

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetOTP(ctx context.Context, id primitive.ObjectID, otp models.OTP) error
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd models.ProfileUpdate) (*models.User, error)
	List(ctx context.Context, page models.Page) ([]models.User, int64, error)
}

type MenuStore interface {
	List(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error)
	Insert(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id primitive.ObjectID, upd models.MenuItemUpdate) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type ComboStore interface {
	List(ctx context.Context) ([]models.ComboDeal, error)
	ListAvailable(ctx context.Context, at time.Time) ([]models.ComboDeal, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ComboDeal, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ComboDeal, error)
	Insert(ctx context.Context, combo *models.ComboDeal) error
	Replace(ctx context.Context, combo *models.ComboDeal) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.OrderWithCustomer, int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, change models.StatusChange) (*models.Order, error)
	ConfirmPayment(ctx context.Context, id primitive.ObjectID, at time.Time) (*models.Order, bool, error)
	FailPayment(ctx context.Context, id primitive.ObjectID, at time.Time) (*models.Order, bool, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) error
	Exists(ctx context.Context, userID, orderID primitive.ObjectID) (bool, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.ReviewUpdate, at time.Time) error
	Respond(ctx context.Context, id primitive.ObjectID, resp models.AdminResponse) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindView(ctx context.Context, id primitive.ObjectID) (*models.ReviewView, error)
	List(ctx context.Context, filter models.ReviewFilter, page models.Page) ([]models.ReviewView, int64, error)
	ListByOrder(ctx context.Context, orderID primitive.ObjectID) ([]models.ReviewView, error)
	ListAll(ctx context.Context) ([]models.ReviewView, error)
	Stats(ctx context.Context) (models.ReviewStats, error)
}

type DashboardStore interface {
	CountOrders(ctx context.Context, since *time.Time) (int64, error)
	SumRevenue(ctx context.Context, since *time.Time) (float64, error)
	CountCustomers(ctx context.Context) (int64, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
	PopularItems(ctx context.Context, limit int) ([]models.PopularItem, error)
	DailyStats(ctx context.Context, since time.Time, loc *time.Location) ([]models.DailyStat, error)
}

type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, role string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

// Broadcaster pushes live events to connected admin clients.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}
