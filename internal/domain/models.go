package domain

// Roles returned by the login endpoint and stored alongside the credential.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Order lifecycle states. Orders are created pending and only ever move
// forward on the server side.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	// Price is deliberately untyped: backend versions disagree on the wire
	// type (number vs string, sometimes absent). Aggregation coerces it, see
	// the cart store.
	Price         any  `json:"price"`
	IsRecommended bool `json:"isRecommended"`
}

// CartItem is a product plus the quantity the customer intends to order.
// Quantity is always >= 1 while the item exists.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type Order struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	Status      string     `json:"status"`
	CreateTime  string     `json:"createTime"`
	TableID     string     `json:"tableId"`
}

type Reservation struct {
	ID      string `json:"id"`
	TableID string `json:"tableId"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Guests  int    `json:"guests,omitempty"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// Session is what a successful login returns. The credential is opaque; the
// role is only meaningful while the credential is present.
type Session struct {
	Credential string `json:"token"`
	Role       string `json:"role"`
}
