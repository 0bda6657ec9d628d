package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

type target struct {
	orderID string
	amount  int64
}

// usage: payment-generator <order_id>:<amount> ...
func parseTargets(args []string) ([]target, error) {
	targets := make([]target, 0, len(args))
	for _, arg := range args {
		id, raw, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("expected <order_id>:<amount>, got %q", arg)
		}
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad amount in %q: %w", arg, err)
		}
		targets = append(targets, target{orderID: id, amount: amount})
	}
	return targets, nil
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateNotification(v service.PaymentVerifier, partnerCode string, t target) entities.PaymentNotification {
	n := entities.PaymentNotification{
		PartnerCode:  partnerCode,
		OrderID:      t.orderID,
		RequestID:    randomString(16),
		Amount:       t.amount,
		OrderInfo:    "shop order " + t.orderID,
		OrderType:    "momo_wallet",
		TransID:      rand.Int63n(1_000_000_000),
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: time.Now().UnixMilli(),
	}
	n.Signature = v.Sign(n)

	// every fifth notification is tampered with so the DLQ path gets traffic
	if rand.Intn(5) == 0 {
		n.Amount++
	}
	return n
}

func main() {
	godotenv.Load()
	conf := config.New()

	targets, err := parseTargets(os.Args[1:])
	if err != nil || len(targets) == 0 {
		log.Fatalf("usage: payment-generator <order_id>:<amount> ... (%v)", err)
	}

	verifier := service.NewPaymentVerifier(conf.Payment.PartnerCode, conf.Payment.AccessKey, conf.Payment.SecretKey)
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(conf.Kafka.Brokers...),
		Topic:                  conf.Kafka.PaymentsTopic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for _, t := range targets {
		select {
		case <-ticker.C:
			n := generateNotification(verifier, conf.Payment.PartnerCode, t)
			data, _ := json.Marshal(n)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(n.OrderID), Value: data}); err != nil {
				log.Println("failed to publish notification", n.OrderID, err)
				continue
			}
			log.Println("notification published", n.OrderID, n.Amount)
		case <-ctx.Done():
			return
		}
	}
}
