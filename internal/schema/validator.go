package schema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sakethnarayana/glow-haven/internal/common"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// customValidations là các tag dùng trong descriptor
var customValidations = map[string]validator.Func{
	"collection_name": validateCollectionName,
	"index_field":     validateIndexField,
}

// Validator trả về validator dùng chung, đã đăng ký các custom validator.
// Đăng ký lỗi là lỗi lập trình nên panic ngay khi khởi tạo.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		if err := registerValidations(v, customValidations); err != nil {
			panic(fmt.Sprintf("schema: %v", err))
		}
		validate = v
	})
	return validate
}

func registerValidations(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

// validateCollectionName kiểm tra tên collection theo quy tắc đặt tên của MongoDB
func validateCollectionName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || len(name) > 120 {
		return false
	}
	if strings.ContainsAny(name, "$\x00") {
		return false
	}
	return !strings.HasPrefix(name, "system.")
}

// validateIndexField kiểm tra đường dẫn field của index (cho phép dạng a.b.c)
func validateIndexField(fl validator.FieldLevel) bool {
	field := fl.Field().String()
	if field == "" || strings.HasPrefix(field, "$") || strings.Contains(field, "\x00") {
		return false
	}
	for _, part := range strings.Split(field, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// ValidateCatalog kiểm tra danh mục trước khi chạm vào database:
// tên collection hợp lệ và không trùng, mỗi index trỏ tới collection đã khai báo,
// tên index không trùng trong cùng collection.
func ValidateCatalog(cols []CollectionDescriptor, idxs []IndexDescriptor) error {
	v := Validator()
	declared := make(map[string]bool, len(cols))

	for i, c := range cols {
		if err := v.Struct(c); err != nil {
			return common.Wrap(common.ErrInvalidCatalog, err, fmt.Sprintf("collection #%d (%q)", i, c.Name))
		}
		if declared[c.Name] {
			return common.Wrap(common.ErrInvalidCatalog, fmt.Errorf("duplicate collection name %q", c.Name), "")
		}
		declared[c.Name] = true
	}

	names := make(map[string]bool, len(idxs))
	for i, idx := range idxs {
		if err := v.Struct(idx); err != nil {
			return common.Wrap(common.ErrInvalidCatalog, err, fmt.Sprintf("index #%d on %q", i, idx.Collection))
		}
		if !declared[idx.Collection] {
			return common.Wrap(common.ErrInvalidCatalog,
				fmt.Errorf("index %s references undeclared collection %q", idx.Name(), idx.Collection), "")
		}
		key := idx.Collection + "." + idx.Name()
		if names[key] {
			return common.Wrap(common.ErrInvalidCatalog, fmt.Errorf("duplicate index %s", key), "")
		}
		names[key] = true
	}

	return nil
}
