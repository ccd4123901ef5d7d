package models

import "time"

// Entities mirror the commerce backend's JSON shapes. Every aggregate here is
// server-owned; this process only holds disposable copies.

type User struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

type Image struct {
	URL string `json:"url"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       Image  `json:"image"`
}

type Product struct {
	ID                   string   `json:"_id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Price                float64  `json:"price"`
	Category             Category `json:"category"`
	Images               []Image  `json:"images"`
	Rating               float64  `json:"rating"`
	NumReviews           int      `json:"numReviews"`
	Stock                int      `json:"stock"`
	IsFeatured           bool     `json:"isFeatured"`
	CustomizationOptions []string `json:"customizationOptions"`
}

// FirstImageURL returns the lead image, or a placeholder when the product has
// none, matching what gets frozen into order line snapshots.
func (p *Product) FirstImageURL() string {
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		return p.Images[0].URL
	}
	return "https://via.placeholder.com/100?text=No+Image"
}

type CartItem struct {
	ID            string            `json:"_id"`
	Product       Product           `json:"product"`
	Quantity      int               `json:"quantity"`
	Price         float64           `json:"price"`
	Customization map[string]string `json:"customization,omitempty"`
	Subtotal      float64           `json:"subtotal"`
}

// Cart aggregates are always taken verbatim from the server; the totals below
// are displayed, never recomputed locally (the checkout summary recomputes a
// subtotal from items purely for display).
type Cart struct {
	ID          string     `json:"_id"`
	UserID      string     `json:"user"`
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Discount    float64    `json:"discount"`
	Tax         float64    `json:"tax"`
	Shipping    float64    `json:"shippingCharges"`
	TotalAmount float64    `json:"totalAmount"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

type Wishlist struct {
	ID       string    `json:"_id"`
	UserID   string    `json:"user"`
	Products []Product `json:"products"`
}

type Address struct {
	ID        string `json:"_id"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// OrderItem is a frozen snapshot captured at order time, decoupled from the
// live product record.
type OrderItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PaymentInfo struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

type Order struct {
	ID              string      `json:"_id"`
	UserID          string      `json:"user"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentInfo     PaymentInfo `json:"paymentInfo"`
	Subtotal        float64     `json:"subtotal"`
	ShippingCharges float64     `json:"shippingCharges"`
	Tax             float64     `json:"tax"`
	TotalAmount     float64     `json:"totalAmount"`
	OrderStatus     OrderStatus `json:"orderStatus"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo reports whether the order status machine permits moving from
// s to next: pending → processing → shipped → delivered, with cancelled
// reachable from pending and processing.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing || next == OrderCancelled
	case OrderProcessing:
		return next == OrderShipped || next == OrderCancelled
	case OrderShipped:
		return next == OrderDelivered
	default:
		return false
	}
}

// PaymentIntent is the provider order issued by the backend when an online
// payment is requested alongside order creation.
type PaymentIntent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type DashboardStats struct {
	TotalOrders    int            `json:"totalOrders"`
	TotalProducts  int            `json:"totalProducts"`
	TotalUsers     int            `json:"totalUsers"`
	TotalRevenue   float64        `json:"totalRevenue"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
}
