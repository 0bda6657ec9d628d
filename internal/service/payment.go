package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

type PaymentMarker interface {
	MarkPaid(ctx context.Context, orderID string, amount decimal.Decimal) error
}

// PaymentVerifier checks MoMo IPN signatures: hex HMAC-SHA256 over the
// notification fields joined as key=value pairs in alphabetical key order.
type PaymentVerifier struct {
	partnerCode string
	accessKey   string
	secretKey   []byte
}

func NewPaymentVerifier(partnerCode, accessKey, secretKey string) PaymentVerifier {
	return PaymentVerifier{
		partnerCode: partnerCode,
		accessKey:   accessKey,
		secretKey:   []byte(secretKey),
	}
}

func (v PaymentVerifier) Sign(n entities.PaymentNotification) string {
	raw := fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&message=%s&orderId=%s&orderInfo=%s&orderType=%s"+
			"&partnerCode=%s&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		v.accessKey, n.Amount, n.ExtraData, n.Message, n.OrderID, n.OrderInfo, n.OrderType,
		n.PartnerCode, n.PayType, n.RequestID, n.ResponseTime, n.ResultCode, n.TransID,
	)
	mac := hmac.New(sha256.New, v.secretKey)
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v PaymentVerifier) Verify(n entities.PaymentNotification) error {
	if n.PartnerCode != v.partnerCode {
		return entities.ErrInvalidSignature
	}
	got, err := hex.DecodeString(n.Signature)
	if err != nil {
		return entities.ErrInvalidSignature
	}
	want, _ := hex.DecodeString(v.Sign(n))
	if !hmac.Equal(got, want) {
		return entities.ErrInvalidSignature
	}
	return nil
}

type paymentService struct {
	logger   *slog.Logger
	verifier PaymentVerifier
	orders   PaymentMarker
}

func NewPaymentService(logger *slog.Logger, verifier PaymentVerifier, orders PaymentMarker) *paymentService {
	return &paymentService{
		logger:   logger.With(slog.String("service", "payment")),
		verifier: verifier,
		orders:   orders,
	}
}

// HandleNotification applies a gateway notification. Unsuccessful payments
// are acknowledged without touching the order.
func (s *paymentService) HandleNotification(ctx context.Context, n entities.PaymentNotification) error {
	if err := s.verifier.Verify(n); err != nil {
		return err
	}
	if !n.Succeeded() {
		s.logger.Info("payment not settled",
			slog.String("order_id", n.OrderID),
			slog.Int("result_code", n.ResultCode),
			slog.String("message", n.Message),
		)
		return nil
	}
	if err := s.orders.MarkPaid(ctx, n.OrderID, decimal.NewFromInt(n.Amount)); err != nil {
		return err
	}
	s.logger.Info("order paid", slog.String("order_id", n.OrderID), slog.Int64("trans_id", n.TransID))
	return nil
}
