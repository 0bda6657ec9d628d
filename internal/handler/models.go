package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/shopspring/decimal"
)

// LineItem is one order position as seen by API clients.
type LineItem struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"10.00"`
}

// CreateOrderRequest is a draft order. Total is the amount the client expects to pay before discount,
// the discount itself comes from CouponCode.
type CreateOrderRequest struct {
	Items      []LineItem      `json:"items" validate:"required,min=1,dive"`
	Total      decimal.Decimal `json:"total" swaggertype:"string" example:"35.00"`
	CouponCode string          `json:"coupon_code,omitempty" validate:"max=64" example:"SPRING10"`
}

type Order struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Items      []LineItem `json:"items"`
	Status     string     `json:"status"`
	Total      string     `json:"total"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Discount   string     `json:"discount"`
	AmountDue  string     `json:"amount_due"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  string    `json:"category_id,omitempty"`
	StoreID     string    `json:"store_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"10.00"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  string          `json:"category_id"`
	StoreID     string          `json:"store_id" validate:"required,uuid"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	CategoryID  *string          `json:"category_id"`
}

type CartItem struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type CheckoutRequest struct {
	Coupon string `json:"coupon" validate:"max=64"`
}

type CouponResult struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Discount string `json:"discount"`
}

type Quote struct {
	Items    []CartItem   `json:"items"`
	Subtotal string       `json:"subtotal"`
	Discount string       `json:"discount"`
	Total    string       `json:"total"`
	Coupon   CouponResult `json:"coupon"`
}

type Coupon struct {
	Code      string          `json:"code" validate:"required,max=64"`
	Discount  decimal.Decimal `json:"discount" swaggertype:"string" example:"10"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Active    bool            `json:"active"`
}

type Store struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type SetRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=customer seller admin"`
}

type SalesByDay struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
	Amount string `json:"amount"`
}

type SalesByCategory struct {
	CategoryID string `json:"category_id"`
	Units      int    `json:"units"`
	Amount     string `json:"amount"`
}

func LineItemsJSONToEntity(items []LineItem) []entities.LineItem {
	res := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return Order{
		ID:         o.ID,
		UserID:     o.UserID,
		Items:      items,
		Status:     string(o.Status),
		Total:      o.Total.StringFixed(2),
		CouponCode: o.CouponCode,
		Discount:   o.Discount.StringFixed(2),
		AmountDue:  o.AmountDue().StringFixed(2),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		StoreID:     p.StoreID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func CreateProductJSONToEntity(p CreateProductRequest) entities.Product {
	return entities.Product{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		StoreID:     p.StoreID,
	}
}

func UpdateProductJSONToPatch(p UpdateProductRequest) service.ProductPatch {
	return service.ProductPatch{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
	}
}

func CartItemEntityToJSON(c entities.CartItem) CartItem {
	return CartItem{ProductID: c.ProductID, Quantity: c.Quantity, AddedAt: c.AddedAt}
}

func CouponResultEntityToJSON(c entities.CouponResult) CouponResult {
	return CouponResult{Code: c.Code, Valid: c.Valid, Discount: c.Discount.String()}
}

func QuoteEntityToJSON(q entities.Quote) Quote {
	return Quote{
		Items:    mapSlice(q.Items, CartItemEntityToJSON),
		Subtotal: q.Subtotal.StringFixed(2),
		Discount: q.Discount.StringFixed(2),
		Total:    q.Total.StringFixed(2),
		Coupon:   CouponResultEntityToJSON(q.Coupon),
	}
}

func CouponEntityToJSON(c entities.Coupon) Coupon {
	return Coupon{Code: c.Code, Discount: c.Discount, ExpiresAt: c.ExpiresAt, Active: c.Active}
}

func CouponJSONToEntity(c Coupon) entities.Coupon {
	return entities.Coupon{Code: c.Code, Discount: c.Discount, ExpiresAt: c.ExpiresAt, Active: c.Active}
}

func StoreEntityToJSON(s entities.Store) Store {
	return Store{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func UserEntityToJSON(u entities.User) User {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     roles,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func SalesByDayEntityToJSON(s entities.SalesByDay) SalesByDay {
	return SalesByDay{Day: s.Day.Format(time.DateOnly), Orders: s.Orders, Amount: s.Amount.StringFixed(2)}
}

func SalesByCategoryEntityToJSON(s entities.SalesByCategory) SalesByCategory {
	return SalesByCategory{CategoryID: s.CategoryID, Units: s.Units, Amount: s.Amount.StringFixed(2)}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
