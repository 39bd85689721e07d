package redis

// Logical persistence keys. The names mirror the storage layout the
// storefront has always used, so an existing dataset keeps working.
const (
	KeyProducts         = "restaurant_products"
	KeyOrders           = "restaurant_orders"
	KeyCart             = "restaurant_cart"
	KeyDeliverySettings = "restaurant_delivery_settings"
	KeyStoreSettings    = "restaurant_store_settings"
	KeySession          = "restaurant_admin_session"
)
