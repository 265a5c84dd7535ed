package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService stores admin notifications and pushes them to live clients.
// It implements OrderEvents.
type NotificationService struct {
	store NotificationStore
	live  Broadcaster
	now   func() time.Time
}

func NewNotificationService(store NotificationStore, live Broadcaster) *NotificationService {
	return &NotificationService{store: store, live: live, now: time.Now}
}

func (s *NotificationService) OrderCreated(ctx context.Context, order *models.Order) {
	msg := fmt.Sprintf("New order %s received (Tk %.2f)", order.OrderNumber, order.GrandTotal())
	s.publish(ctx, models.EventNewOrder, order, msg)
}

func (s *NotificationService) OrderStatusChanged(ctx context.Context, order *models.Order) {
	msg := fmt.Sprintf("Order %s is now %s", order.OrderNumber, order.OrderStatus)
	s.publish(ctx, models.EventOrderStatus, order, msg)
}

func (s *NotificationService) PaymentStatusChanged(ctx context.Context, order *models.Order) {
	msg := fmt.Sprintf("Payment for order %s is %s", order.OrderNumber, order.PaymentStatus)
	s.publish(ctx, models.EventPaymentStatus, order, msg)
}

// publish never fails the caller; a lost notification is only logged.
func (s *NotificationService) publish(ctx context.Context, event string, order *models.Order, msg string) {
	n := &models.Notification{
		ID:         primitive.NewObjectID(),
		User_role:  models.RoleAdmin,
		Order_id:   order.ID,
		Event:      event,
		Message:    msg,
		Created_at: s.now(),
	}
	if err := s.store.Insert(ctx, n); err != nil {
		log.Printf("store %s notification for order %s: %v", event, order.OrderNumber, err)
	}
	if s.live != nil {
		s.live.Broadcast(event, map[string]interface{}{
			"order":        order,
			"notification": n,
		})
	}
}

func (s *NotificationService) List(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	return s.store.List(ctx, models.RoleAdmin, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.store.MarkRead(ctx, id), "Notification")
}
