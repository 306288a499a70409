package models

type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

func (User) TableName() string { return "users" }

type Profile struct {
	UserID    int    `gorm:"primaryKey"  json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

func (Profile) TableName() string { return "profiles" }

type Category struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `json:"description"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	CategoryID  int     `gorm:"index;not null"           json:"category_id"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
}

func (Product) TableName() string { return "products" }

// CartItem is one persisted line of a user's cart. At most one row may exist
// per (user_id, product_id); quantity never reaches zero, the row is deleted
// instead.
type CartItem struct {
	ID        int `gorm:"primaryKey;autoIncrement"                json:"id"`
	UserID    int `gorm:"uniqueIndex:idx_user_product;not null"   json:"user_id"`
	ProductID int `gorm:"uniqueIndex:idx_user_product;not null"   json:"product_id"`
	Quantity  int `gorm:"default:1;check:quantity>0"              json:"quantity"`
}

func (CartItem) TableName() string { return "shopping_cart" }

// ShoppingCart is a per-read view, never persisted. Product snapshots reflect
// the catalog at read time, not at the time the item was added.
type ShoppingCart struct {
	Items map[int]ShoppingCartItem `json:"items"`
	Total float64                  `json:"total"`
}

type ShoppingCartItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

func NewShoppingCart() ShoppingCart {
	return ShoppingCart{Items: map[int]ShoppingCartItem{}}
}

func (s *ShoppingCart) Add(item ShoppingCartItem) {
	item.LineTotal = item.Product.Price * float64(item.Quantity)
	s.Items[item.Product.ID] = item
	s.Total += item.LineTotal
}
