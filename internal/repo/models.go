package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	CategoryID  sql.NullString  `db:"category_id"`
	StoreID     string          `db:"store_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Order struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Status     string          `db:"status"`
	Total      decimal.Decimal `db:"total"`
	CouponCode sql.NullString  `db:"coupon_code"`
	Discount   decimal.Decimal `db:"discount"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

type CartItem struct {
	UserID    string    `db:"user_id"`
	ProductID string    `db:"product_id"`
	Quantity  int       `db:"quantity"`
	AddedAt   time.Time `db:"added_at"`
}

type Coupon struct {
	Code      string          `db:"code"`
	Discount  decimal.Decimal `db:"discount"`
	ExpiresAt sql.NullTime    `db:"expires_at"`
	Active    bool            `db:"active"`
}

type User struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	PasswordHash string         `db:"password_hash"`
	Roles        pq.StringArray `db:"roles"`
	Active       bool           `db:"active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Store struct {
	ID          string         `db:"id"`
	OwnerID     string         `db:"owner_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type Review struct {
	ID        string         `db:"id"`
	ProductID string         `db:"product_id"`
	UserID    string         `db:"user_id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt time.Time      `db:"created_at"`
}

type SalesByDay struct {
	Day    time.Time       `db:"day"`
	Orders int             `db:"orders"`
	Amount decimal.Decimal `db:"amount"`
}

type SalesByCategory struct {
	CategoryID sql.NullString  `db:"category_id"`
	Units      int             `db:"units"`
	Amount     decimal.Decimal `db:"amount"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description.String,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID.String,
		StoreID:     p.StoreID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	lines := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		Items:      lines,
		Status:     entities.OrderStatus(o.Status),
		Total:      o.Total,
		CouponCode: o.CouponCode.String,
		Discount:   o.Discount,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func CartItemToEntity(c CartItem) entities.CartItem {
	return entities.CartItem{
		UserID:    c.UserID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
		AddedAt:   c.AddedAt,
	}
}

func CouponToEntity(c Coupon) entities.Coupon {
	var expires *time.Time
	if c.ExpiresAt.Valid {
		t := c.ExpiresAt.Time
		expires = &t
	}
	return entities.Coupon{
		Code:      c.Code,
		Discount:  c.Discount,
		ExpiresAt: expires,
		Active:    c.Active,
	}
}

func UserToEntity(u User) entities.User {
	roles := make([]entities.Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, entities.Role(r))
	}
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Roles:        roles,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func rolesToArray(roles []entities.Role) pq.StringArray {
	arr := make(pq.StringArray, 0, len(roles))
	for _, r := range roles {
		arr = append(arr, string(r))
	}
	return arr
}

func StoreToEntity(s Store) entities.Store {
	return entities.Store{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description.String,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment.String,
		CreatedAt: r.CreatedAt,
	}
}
