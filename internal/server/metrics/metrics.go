// Package metrics exposes the exchange's Prometheus collectors and the
// HTTP endpoint that serves them.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vaccx"

// Collector owns a private registry. It implements the trade observer the
// exchange engine reports to and records per-RPC counts and latencies.
type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	trades   *prometheus.CounterVec
	volume   prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Buy attempts that reached a listing, by outcome.",
		}, []string{"outcome"}),
		volume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trade_volume_total",
			Help:      "Sum of prices paid in completed trades.",
		}),
	}

	c.registry.MustRegister(
		c.requests, c.latency, c.trades, c.volume,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveRPC records one finished call.
func (c *Collector) ObserveRPC(method, code string, d time.Duration) {
	c.requests.WithLabelValues(method, code).Inc()
	c.latency.WithLabelValues(method).Observe(d.Seconds())
}

func (c *Collector) TradeCompleted(price float64) {
	c.trades.WithLabelValues("completed").Inc()
	c.volume.Add(price)
}

func (c *Collector) TradeRejected(reason string) {
	c.trades.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Server serves /metrics until its context is cancelled.
type Server struct {
	address string
	srv     *http.Server
	logger  logging.Logger
}

func NewServer(address string, c *Collector, l logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	return &Server{
		address: address,
		srv:     &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		logger:  l.With("module", "metrics_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is done.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping metrics server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting metrics server", "address", l.Addr().String())
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
