package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventNewOrder      = "newOrder"
	EventOrderStatus   = "orderStatus"
	EventPaymentStatus = "paymentStatus"
)

type Notification struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	User_role  string             `bson:"userRole" json:"userRole"`
	Order_id   primitive.ObjectID `bson:"orderId" json:"orderId"`
	Event      string             `bson:"event" json:"event"`
	Message    string             `bson:"message" json:"message"`
	Is_read    bool               `bson:"isRead" json:"isRead"`
	Created_at time.Time          `bson:"createdAt" json:"createdAt"`
}
