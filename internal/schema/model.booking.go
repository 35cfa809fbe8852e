package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái lịch hẹn
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking định nghĩa lịch hẹn dịch vụ
// Thông tin dịch vụ được chép lại tại thời điểm đặt (service_name, service_price, service_duration)
type Booking struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"user_id"`
	ServiceID       primitive.ObjectID `json:"serviceId" bson:"service_id"`
	ServiceName     string             `json:"serviceName" bson:"service_name"`
	ServicePrice    float64            `json:"servicePrice" bson:"service_price"`
	ServiceDuration string             `json:"serviceDuration" bson:"service_duration"`
	Date            string             `json:"date" bson:"date"`
	Time            string             `json:"time" bson:"time"`
	Name            string             `json:"name" bson:"name"`
	Phone           string             `json:"phone" bson:"phone"`
	Status          string             `json:"status" bson:"status"` // pending | confirmed | completed | cancelled
}

// NewBookingTemplate trả về document mẫu của collection bookings
func NewBookingTemplate() any {
	return &Booking{
		UserID:    primitive.NewObjectID(),
		ServiceID: primitive.NewObjectID(),
		Status:    BookingStatusPending,
	}
}
