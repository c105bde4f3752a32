// Package metrics collects HTTP and clinic-domain counters on a
// dedicated prometheus registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	PatientsRegistered     prometheus.Counter
	AppointmentsScheduled  prometheus.Counter
	AppointmentsCancelled  prometheus.Counter
	TreatmentsRecorded     prometheus.Counter
	NotificationsDelivered prometheus.Counter

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func New(prefix string) *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		PatientsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_patients_registered_total",
			Help: "Total number of patients registered",
		}),
		AppointmentsScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_appointments_scheduled_total",
			Help: "Total number of appointments scheduled",
		}),
		AppointmentsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_appointments_cancelled_total",
			Help: "Total number of appointments cancelled",
		}),
		TreatmentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_treatments_recorded_total",
			Help: "Total number of treatments recorded",
		}),
		NotificationsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_notifications_delivered_total",
			Help: "Total number of appointment notifications delivered",
		}),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	registry.MustRegister(
		m.PatientsRegistered,
		m.AppointmentsScheduled,
		m.AppointmentsCancelled,
		m.TreatmentsRecorded,
		m.NotificationsDelivered,
		m.requestDuration,
		m.requestTotal,
		m.errorTotal,
	)

	return m
}

// Middleware records duration, count and error count per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		m.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			m.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}

// Handler exposes the registry in prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
