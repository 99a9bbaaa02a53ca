package catalog

import "github.com/vigyat/agrostore/internal/collection"

const (
	EntityProducts  = "products"
	EntityCrops     = "crops"
	EntityArticles  = "articles"
	EntitySliders   = "sliders"
	EntityOrders    = "orders"
	EntityStoreInfo = "store-info"
)

// StoreInfoID is the id of the single store-info record.
const StoreInfoID = "main"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

//nolint:gochecknoglobals //static schema table
var (
	Products = collection.Schema{
		Name: EntityProducts,
		Key:  "products",
		Fields: []collection.Field{
			{Name: "name", Kind: collection.KindString, Required: true},
			{Name: "nameHindi", Kind: collection.KindString},
			{Name: "description", Kind: collection.KindString},
			{Name: "price", Kind: collection.KindNumber, Required: true},
			{Name: "image", Kind: collection.KindString},
			{Name: "type", Kind: collection.KindString},
			{Name: "composition", Kind: collection.KindString},
			{Name: "quantity", Kind: collection.KindString},
			{Name: "inStock", Kind: collection.KindBool, Default: true},
		},
		ImageField: "image",
	}

	Crops = collection.Schema{
		Name: EntityCrops,
		Key:  "crops",
		Fields: []collection.Field{
			{Name: "title", Kind: collection.KindString, Required: true},
			{Name: "titleHindi", Kind: collection.KindString},
			{Name: "description", Kind: collection.KindString},
			{Name: "image", Kind: collection.KindString},
		},
		ImageField: "image",
	}

	Articles = collection.Schema{
		Name: EntityArticles,
		Key:  "articles",
		Fields: []collection.Field{
			{Name: "title", Kind: collection.KindString, Required: true},
			{Name: "titleHindi", Kind: collection.KindString},
			{Name: "content", Kind: collection.KindString, Required: true},
			{Name: "image", Kind: collection.KindString},
		},
		ImageField: "image",
	}

	Sliders = collection.Schema{
		Name: EntitySliders,
		Key:  "sliders",
		Fields: []collection.Field{
			{Name: "group", Kind: collection.KindString, OneOf: []string{"bestSeller", "featured"}},
			{Name: "image", Kind: collection.KindString, Required: true},
		},
		ImageField: "image",
	}

	Orders = collection.Schema{
		Name: EntityOrders,
		Key:  "orders",
		Fields: []collection.Field{
			{Name: "items", Kind: collection.KindList, Required: true},
			{Name: "customer", Kind: collection.KindObject, Required: true},
			{Name: "total", Kind: collection.KindNumber, Required: true},
			{
				Name: "status",
				Kind: collection.KindString,
				OneOf: []string{
					OrderStatusPending,
					OrderStatusConfirmed,
					OrderStatusDelivered,
					OrderStatusCancelled,
				},
				Default: OrderStatusPending,
			},
		},
	}

	StoreInfo = collection.Schema{
		Name: EntityStoreInfo,
		Key:  "store_info",
		Fields: []collection.Field{
			{Name: "name", Kind: collection.KindString},
			{Name: "phone", Kind: collection.KindString},
			{Name: "whatsapp", Kind: collection.KindString},
			{Name: "address", Kind: collection.KindString},
			{Name: "banner", Kind: collection.KindString},
		},
		ImageField: "banner",
	}
)

// Schemas lists every entity in route registration order.
func Schemas() []collection.Schema {
	return []collection.Schema{Products, Crops, Articles, Sliders, Orders, StoreInfo}
}
