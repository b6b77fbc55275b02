package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var orderOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "frankies_order_operations_total",
	Help: "Order lifecycle operations by action and outcome.",
}, []string{"action", "outcome"})
