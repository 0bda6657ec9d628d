package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  string
	StoreID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductQuery struct {
	Search     string
	CategoryID string
	StoreID    string
	Limit      int
	Offset     int
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(p)
}

func init() {
	gob.Register(Product{})
	gob.Register(Coupon{})
}
