package transport

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type CartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"category_id"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileRequest carries the mutable profile fields. A user_id in the body is
// accepted by the decoder and then ignored: the profile is always addressed
// by the authenticated principal.
type ProfileRequest struct {
	UserID    int    `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}
