package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product định nghĩa sản phẩm bán trong cửa hàng
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image" bson:"image"`
	Category    string             `json:"category" bson:"category"`
	Stock       int                `json:"stock" bson:"stock"`
}

// NewProductTemplate trả về document mẫu của collection products
func NewProductTemplate() any {
	return &Product{}
}
