package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind groups error codes by how the boundary should treat them.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindUnauthenticated
	KindForbidden
)

// Code is a stable machine-readable reason.
type Code string

const (
	CodeInternal                Code = "INTERNAL"
	CodeInvalidInput            Code = "INVALID_INPUT"
	CodeEmptyOrder              Code = "EMPTY_ORDER"
	CodeInvalidLineItem         Code = "INVALID_LINE_ITEM"
	CodeTotalMismatch           Code = "TOTAL_MISMATCH"
	CodeInsufficientStock       Code = "INSUFFICIENT_STOCK"
	CodeInvalidStatusTransition Code = "INVALID_STATUS_TRANSITION"
	CodeOrderAlreadyProcessed   Code = "ORDER_ALREADY_PROCESSED"
	CodeStatusConflict          Code = "STATUS_CONFLICT"
	CodePaymentMismatch         Code = "PAYMENT_MISMATCH"
	CodeInvalidDiscount         Code = "INVALID_DISCOUNT"
	CodeInvalidCoupon           Code = "INVALID_COUPON"
	CodeEmptyCart               Code = "EMPTY_CART"
	CodeDuplicateUser           Code = "DUPLICATE_USER"
	CodeDuplicateReview         Code = "DUPLICATE_REVIEW"
	CodeProductNotFound         Code = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound           Code = "ORDER_NOT_FOUND"
	CodeUserNotFound            Code = "USER_NOT_FOUND"
	CodeStoreNotFound           Code = "STORE_NOT_FOUND"
	CodeReviewNotFound          Code = "REVIEW_NOT_FOUND"
	CodeCartItemNotFound        Code = "CART_ITEM_NOT_FOUND"
	CodeCouponNotFound          Code = "COUPON_NOT_FOUND"
	CodeInvalidSignature        Code = "INVALID_SIGNATURE"
	CodeInvalidCredentials      Code = "INVALID_CREDENTIALS"
	CodeUnauthenticated         Code = "UNAUTHENTICATED"
	CodeInactiveAccount         Code = "INACTIVE_ACCOUNT"
	CodeUnauthorizedAccess      Code = "UNAUTHORIZED_ACCESS"
)

var codeKinds = map[Code]Kind{
	CodeInternal:                KindInternal,
	CodeInvalidInput:            KindValidation,
	CodeEmptyOrder:              KindValidation,
	CodeInvalidLineItem:         KindValidation,
	CodeTotalMismatch:           KindValidation,
	CodeInsufficientStock:       KindValidation,
	CodeInvalidStatusTransition: KindValidation,
	CodeOrderAlreadyProcessed:   KindValidation,
	CodeStatusConflict:          KindConflict,
	CodePaymentMismatch:         KindValidation,
	CodeInvalidDiscount:         KindValidation,
	CodeInvalidCoupon:           KindValidation,
	CodeEmptyCart:               KindValidation,
	CodeDuplicateUser:           KindConflict,
	CodeDuplicateReview:         KindConflict,
	CodeProductNotFound:         KindNotFound,
	CodeOrderNotFound:           KindNotFound,
	CodeUserNotFound:            KindNotFound,
	CodeStoreNotFound:           KindNotFound,
	CodeReviewNotFound:          KindNotFound,
	CodeCartItemNotFound:        KindNotFound,
	CodeCouponNotFound:          KindNotFound,
	CodeInvalidSignature:        KindValidation,
	CodeInvalidCredentials:      KindUnauthenticated,
	CodeUnauthenticated:         KindUnauthenticated,
	CodeInactiveAccount:         KindForbidden,
	CodeUnauthorizedAccess:      KindForbidden,
}

// Kind returns the class of the code. Unknown codes are internal.
func (c Code) Kind() Kind {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return KindInternal
}

// Error is the single domain error type. Fields carries the structured
// payload of the failure (product id, expected total and so on).
type Error struct {
	Code    Code
	Message string
	Fields  map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code, so sentinels below work with
// errors.Is regardless of payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(code Code, msg string, fields map[string]any) *Error {
	return &Error{Code: code, Message: msg, Fields: fields}
}

// CodeOf extracts the domain code from err, CodeInternal when err is not a
// domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

var (
	ErrInvalidInput            = newError(CodeInvalidInput, "invalid input", nil)
	ErrEmptyOrder              = newError(CodeEmptyOrder, "order has no line items", nil)
	ErrInvalidLineItem         = newError(CodeInvalidLineItem, "invalid line item", nil)
	ErrTotalMismatch           = newError(CodeTotalMismatch, "order total mismatch", nil)
	ErrInsufficientStock       = newError(CodeInsufficientStock, "insufficient stock", nil)
	ErrInvalidStatusTransition = newError(CodeInvalidStatusTransition, "invalid status transition", nil)
	ErrOrderAlreadyProcessed   = newError(CodeOrderAlreadyProcessed, "order already processed", nil)
	ErrStatusConflict          = newError(CodeStatusConflict, "order status changed concurrently", nil)
	ErrPaymentMismatch         = newError(CodePaymentMismatch, "payment amount does not match order", nil)
	ErrInvalidDiscount         = newError(CodeInvalidDiscount, "discount percentage must be between 0 and 100", nil)
	ErrInvalidCoupon           = newError(CodeInvalidCoupon, "coupon is not valid", nil)
	ErrEmptyCart               = newError(CodeEmptyCart, "cart is empty", nil)
	ErrDuplicateUser           = newError(CodeDuplicateUser, "user already exists", nil)
	ErrDuplicateReview         = newError(CodeDuplicateReview, "product already reviewed by user", nil)
	ErrProductNotFound         = newError(CodeProductNotFound, "product not found", nil)
	ErrOrderNotFound           = newError(CodeOrderNotFound, "order not found", nil)
	ErrUserNotFound            = newError(CodeUserNotFound, "user not found", nil)
	ErrStoreNotFound           = newError(CodeStoreNotFound, "store not found", nil)
	ErrReviewNotFound          = newError(CodeReviewNotFound, "review not found", nil)
	ErrCartItemNotFound        = newError(CodeCartItemNotFound, "cart item not found", nil)
	ErrCouponNotFound          = newError(CodeCouponNotFound, "coupon not found", nil)
	ErrInvalidSignature        = newError(CodeInvalidSignature, "invalid payment signature", nil)
	ErrInvalidCredentials      = newError(CodeInvalidCredentials, "invalid email or password", nil)
	ErrUnauthenticated         = newError(CodeUnauthenticated, "authentication required", nil)
	ErrInactiveAccount         = newError(CodeInactiveAccount, "account is inactive", nil)
	ErrUnauthorizedAccess      = newError(CodeUnauthorizedAccess, "access denied", nil)
)

func InsufficientStock(product string, requested, available int) *Error {
	return newError(CodeInsufficientStock,
		fmt.Sprintf("insufficient stock for %s: requested %d, available %d", product, requested, available),
		map[string]any{"product": product, "requested": requested, "available": available})
}

func TotalMismatch(expected, provided decimal.Decimal) *Error {
	return newError(CodeTotalMismatch,
		fmt.Sprintf("order total mismatch: expected %s, provided %s", expected.StringFixed(2), provided.StringFixed(2)),
		map[string]any{"expected": expected.StringFixed(2), "provided": provided.StringFixed(2)})
}

func ProductNotFound(productID string) *Error {
	return newError(CodeProductNotFound, "product not found: "+productID,
		map[string]any{"product_id": productID})
}

func InvalidLineItem(index int, reason string) *Error {
	return newError(CodeInvalidLineItem, fmt.Sprintf("line item %d: %s", index, reason),
		map[string]any{"index": index, "reason": reason})
}

func InvalidStatusTransition(from, to OrderStatus) *Error {
	return newError(CodeInvalidStatusTransition,
		fmt.Sprintf("cannot change order status from %q to %q", from, to),
		map[string]any{"from": string(from), "to": string(to)})
}

func OrderAlreadyProcessed(orderID string) *Error {
	return newError(CodeOrderAlreadyProcessed, "order already processed: "+orderID,
		map[string]any{"order_id": orderID})
}

func UnauthorizedAccess(action string) *Error {
	return newError(CodeUnauthorizedAccess, "not allowed to "+action,
		map[string]any{"action": action})
}

func InvalidInput(msg string) *Error {
	return newError(CodeInvalidInput, msg, nil)
}
