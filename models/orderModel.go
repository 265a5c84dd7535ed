package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentCard   = "card"
	PaymentBkash  = "bkash"
	PaymentNagad  = "nagad"
	PaymentRocket = "rocket"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

var OrderStatuses = []string{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

func IsOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether an order in status s is finished.
func IsTerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// OrderItem is a snapshot of a catalog entry taken when the order was placed.
type OrderItem struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Description string  `bson:"description" json:"description"`
}

type StatusChange struct {
	Status     string              `bson:"status" json:"status"`
	Changed_at time.Time           `bson:"changedAt" json:"changedAt"`
	Changed_by *primitive.ObjectID `bson:"changedBy,omitempty" json:"changedBy,omitempty"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	DeliveryFee     float64            `bson:"deliveryFee" json:"deliveryFee"`
	DeliveryAddress string             `bson:"deliveryAddress" json:"deliveryAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	OrderStatus     string             `bson:"orderStatus" json:"orderStatus"`
	StatusHistory   []StatusChange     `bson:"statusHistory" json:"statusHistory"`
	Created_at      time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GrandTotal is the amount charged: items plus delivery.
func (o *Order) GrandTotal() float64 {
	return o.TotalAmount + o.DeliveryFee
}

type CustomerSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Phone string             `bson:"phone" json:"phone"`
}

// OrderWithCustomer is an order with its owner populated, as listed to admins.
type OrderWithCustomer struct {
	Order    `bson:",inline"`
	Customer *CustomerSummary `bson:"customer,omitempty" json:"customer,omitempty"`
}

type CartLine struct {
	MenuItemID string `json:"menuItemId" validate:"required_without=ComboID"`
	ComboID    string `json:"comboId" validate:"required_without=MenuItemID"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=50"`
}

type CreateOrderRequest struct {
	Items           []CartLine `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress string     `json:"deliveryAddress" validate:"required,min=3"`
	PaymentMethod   string     `json:"paymentMethod" validate:"required,oneof=card bkash nagad rocket"`
}

type OrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required,oneof=pending confirmed preparing out_for_delivery delivered cancelled"`
}

type OrderFilter struct {
	Status string
}

// CreatedOrder is returned from order creation; ClientSecret is set for card payments.
type CreatedOrder struct {
	Order        *Order `json:"order"`
	ClientSecret string `json:"clientSecret,omitempty"`
}
