package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address định nghĩa địa chỉ giao hàng của người dùng
type Address struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"user_id"`
	Label         string             `json:"label" bson:"label"`
	RecipientName string             `json:"recipientName" bson:"recipient_name"`
	Phone         string             `json:"phone" bson:"phone"`
	AddressLine   string             `json:"addressLine" bson:"address_line"`
	Landmark      string             `json:"landmark" bson:"landmark"`
	Pincode       string             `json:"pincode" bson:"pincode"`
	City          string             `json:"city" bson:"city"`
	State         string             `json:"state" bson:"state"`
	IsDefault     bool               `json:"isDefault" bson:"is_default"`
}

// NewAddressTemplate trả về document mẫu của collection addresses
func NewAddressTemplate() any {
	return &Address{UserID: primitive.NewObjectID()}
}
