package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters/histograms for the booking API.
type Metrics struct {
	bookingsTotal   *prometheus.CounterVec
	guardDenials    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the API metrics on reg, or on the default registerer when
// reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctors_portal",
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Booking attempts by outcome (created, duplicate).",
		}, []string{"outcome"}),
		guardDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctors_portal",
			Subsystem: "auth",
			Name:      "guard_denials_total",
			Help:      "Requests rejected by an authorization guard.",
		}, []string{"guard", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "doctors_portal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.guardDenials, m.requestDuration)
	return m
}

// ObserveBooking counts one booking attempt.
func (m *Metrics) ObserveBooking(created bool) {
	if m == nil {
		return
	}
	outcome := "duplicate"
	if created {
		outcome = "created"
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDenial counts one guard rejection.
func (m *Metrics) ObserveDenial(guard string, status int) {
	if m == nil {
		return
	}
	m.guardDenials.WithLabelValues(guard, strconv.Itoa(status)).Inc()
}

// Middleware records request latency labelled with the route pattern, so
// /doctor/:email stays one series.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if err != nil {
				status = 500
			}
			m.requestDuration.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
