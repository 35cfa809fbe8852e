package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availability lưu các khung giờ không nhận lịch trong một ngày
type Availability struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date             string             `json:"date" bson:"date"`
	UnavailableSlots []string           `json:"unavailableSlots" bson:"unavailable_slots"`
}

// NewAvailabilityTemplate trả về document mẫu của collection availability
func NewAvailabilityTemplate() any {
	return &Availability{UnavailableSlots: []string{}}
}
