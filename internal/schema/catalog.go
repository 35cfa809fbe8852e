package schema

// Tên các collection
const (
	ColUsers        = "users"
	ColAddresses    = "addresses"
	ColProducts     = "products"
	ColOrders       = "orders"
	ColServices     = "services"
	ColBookings     = "bookings"
	ColAvailability = "availability"
)

// Collections trả về danh sách collection cần tạo, theo đúng thứ tự xử lý
func Collections() []CollectionDescriptor {
	return []CollectionDescriptor{
		{Name: ColUsers, Template: NewUserTemplate},
		{Name: ColAddresses, Template: NewAddressTemplate},
		{Name: ColProducts, Template: NewProductTemplate},
		{Name: ColOrders, Template: NewOrderTemplate},
		{Name: ColServices, Template: NewServiceTemplate},
		{Name: ColBookings, Template: NewBookingTemplate},
		{Name: ColAvailability, Template: NewAvailabilityTemplate},
	}
}

// Indexes trả về danh sách index cần tạo, theo đúng thứ tự xử lý
// availability không có index phụ
func Indexes() []IndexDescriptor {
	return []IndexDescriptor{
		// users: số điện thoại là định danh đăng nhập
		{Collection: ColUsers, Keys: []IndexKey{Asc("phone")}, Unique: true},
		{Collection: ColAddresses, Keys: []IndexKey{Asc("user_id")}},
		{Collection: ColOrders, Keys: []IndexKey{Asc("user_id")}},
		{Collection: ColBookings, Keys: []IndexKey{Asc("user_id")}},
		// bookings: tra cứu lịch theo ngày + giờ
		{Collection: ColBookings, Keys: []IndexKey{Asc("date"), Asc("time")}},
		{Collection: ColProducts, Keys: []IndexKey{Asc("category")}},
		{Collection: ColServices, Keys: []IndexKey{Asc("name")}},
	}
}
