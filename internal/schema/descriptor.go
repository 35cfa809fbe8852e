package schema

import (
	"bytes"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// CollectionDescriptor mô tả một collection cần tồn tại.
// Template chỉ dùng để tạo document probe, không có tác dụng validate dữ liệu.
type CollectionDescriptor struct {
	Name     string     `validate:"required,collection_name"`
	Template func() any `validate:"required"`
}

// IndexKey là một cặp (field, chiều sắp xếp)
type IndexKey struct {
	Field     string `validate:"required,index_field"`
	Direction int    `validate:"oneof=1 -1"`
}

// IndexDescriptor mô tả một index cần tồn tại trên collection
type IndexDescriptor struct {
	Collection string     `validate:"required,collection_name"`
	Keys       []IndexKey `validate:"required,min=1,dive"`
	Unique     bool
}

// Asc tạo IndexKey tăng dần
func Asc(field string) IndexKey {
	return IndexKey{Field: field, Direction: 1}
}

// Desc tạo IndexKey giảm dần
func Desc(field string) IndexKey {
	return IndexKey{Field: field, Direction: -1}
}

// Name trả về tên index theo quy ước mặc định của MongoDB (vd: phone_1, date_1_time_1)
func (d IndexDescriptor) Name() string {
	parts := make([]string, 0, len(d.Keys))
	for _, k := range d.Keys {
		parts = append(parts, fmt.Sprintf("%s_%d", k.Field, k.Direction))
	}
	return strings.Join(parts, "_")
}

// KeysDocument trả về key spec dạng bson.D (giữ thứ tự field)
func (d IndexDescriptor) KeysDocument() bson.D {
	keys := make(bson.D, 0, len(d.Keys))
	for _, k := range d.Keys {
		keys = append(keys, bson.E{Key: k.Field, Value: k.Direction})
	}
	return keys
}

// Spec trả về IndexSpec mà descriptor yêu cầu
func (d IndexDescriptor) Spec() IndexSpec {
	return IndexSpec{Name: d.Name(), Keys: d.Keys, Unique: d.Unique}
}

// IndexSpec mô tả một index đang có trong database.
// Các option ngoài unique giữ nguyên dạng server trả về; descriptor không đặt option nào trong số đó.
type IndexSpec struct {
	Name   string
	Keys   []IndexKey
	Unique bool

	Sparse                  bool
	Hidden                  bool
	ExpireAfterSeconds      *int64
	PartialFilterExpression bson.Raw
	Collation               bson.Raw
}

// SameKeys so sánh key spec, thứ tự field có ý nghĩa
func (s IndexSpec) SameKeys(other IndexSpec) bool {
	if len(s.Keys) != len(other.Keys) {
		return false
	}
	for i := range s.Keys {
		if s.Keys[i] != other.Keys[i] {
			return false
		}
	}
	return true
}

// Matches trả về true nếu hai spec có cùng key và cùng mọi option (không xét tên)
func (s IndexSpec) Matches(other IndexSpec) bool {
	return s.SameKeys(other) && s.sameOptions(other)
}

func (s IndexSpec) sameOptions(other IndexSpec) bool {
	if s.Unique != other.Unique || s.Sparse != other.Sparse || s.Hidden != other.Hidden {
		return false
	}
	if (s.ExpireAfterSeconds == nil) != (other.ExpireAfterSeconds == nil) {
		return false
	}
	if s.ExpireAfterSeconds != nil && *s.ExpireAfterSeconds != *other.ExpireAfterSeconds {
		return false
	}
	return bytes.Equal(s.PartialFilterExpression, other.PartialFilterExpression) &&
		bytes.Equal(s.Collation, other.Collation)
}

// String trả về dạng đọc được, vd: {date: 1, time: 1} unique
func (s IndexSpec) String() string {
	parts := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k.Field, k.Direction))
	}
	out := "{" + strings.Join(parts, ", ") + "}"
	if s.Unique {
		out += " unique"
	}
	if s.Sparse {
		out += " sparse"
	}
	if s.Hidden {
		out += " hidden"
	}
	if s.ExpireAfterSeconds != nil {
		out += fmt.Sprintf(" expireAfterSeconds=%d", *s.ExpireAfterSeconds)
	}
	if len(s.PartialFilterExpression) > 0 {
		out += " partialFilterExpression=" + s.PartialFilterExpression.String()
	}
	if len(s.Collation) > 0 {
		out += " collation=" + s.Collation.String()
	}
	return out
}
