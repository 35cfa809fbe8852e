package schema

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order định nghĩa đơn hàng sản phẩm
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"user_id"`
	AddressID   primitive.ObjectID `json:"addressId" bson:"address_id"`
	Items       []bson.M           `json:"items" bson:"items"` // Chưa cố định cấu trúc item
	TotalAmount float64            `json:"totalAmount" bson:"total_amount"`
	Status      string             `json:"status" bson:"status"` // pending | confirmed | delivered | cancelled
}

// NewOrderTemplate trả về document mẫu của collection orders
func NewOrderTemplate() any {
	return &Order{
		UserID:    primitive.NewObjectID(),
		AddressID: primitive.NewObjectID(),
		Items:     []bson.M{},
		Status:    OrderStatusPending,
	}
}
