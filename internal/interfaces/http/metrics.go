package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas registradas no registro padrão do Prometheus via promauto.
var (
	// http_requests_total: contador de requisições, fatiável por method/path/code.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requisições HTTP recebidas.",
		},
		[]string{"method", "path", "code"},
	)

	// http_request_duration_seconds: histograma de latência (percentis p95/p99).
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "code"},
	)

	// webhook_events_total: resultado do processamento por provedor.
	webhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Eventos de webhook de pagamento processados, por provedor e resultado.",
		},
		[]string{"provider", "result"},
	)
)

// MetricsMiddleware coleta contador e histograma de cada requisição.
// Usa o padrão da rota (ex: /api/members/:id) como label para não explodir
// a cardinalidade com IDs.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(code)}
		httpRequestsTotal.WithLabelValues(labels...).Inc()
		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

func countWebhookEvent(provider, result string) {
	webhookEventsTotal.WithLabelValues(provider, result).Inc()
}
