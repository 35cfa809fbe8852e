// Package schema - các document template, descriptor và danh mục collection/index cố định.
package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vai trò người dùng
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User định nghĩa document người dùng, định danh bằng số điện thoại
type User struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Phone string             `json:"phone" bson:"phone"`
	Name  string             `json:"name" bson:"name"`
	Role  string             `json:"role" bson:"role"` // user | admin
}

// NewUserTemplate trả về document mẫu của collection users
func NewUserTemplate() any {
	return &User{Role: RoleUser}
}
