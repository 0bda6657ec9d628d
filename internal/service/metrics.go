package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_service_orders_created_total",
		Help: "Total number of orders created",
	})

	ordersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_service_orders_rejected_total",
		Help: "Total number of order drafts rejected, by error code",
	}, []string{"code"})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_service_order_status_transitions_total",
		Help: "Total number of applied order status transitions",
	}, []string{"from", "to"})
)
