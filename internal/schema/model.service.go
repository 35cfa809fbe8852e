package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service định nghĩa dịch vụ có thể đặt lịch
type Service struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Duration    string             `json:"duration" bson:"duration"`
	Image       string             `json:"image" bson:"image"`
}

// NewServiceTemplate trả về document mẫu của collection services
func NewServiceTemplate() any {
	return &Service{}
}
