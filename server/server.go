package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"heatx/calculator"
	"heatx/metrics"
	"heatx/model"
)

type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
	sizer    *calculator.Sizer
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func NewServer(cfg Config, upgrader websocket.Upgrader, sizer *calculator.Sizer) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
		sizer:    sizer,
		registry: reg,
		metrics:  metrics.New(reg),
	}
}

// Handler routes /ws to a per-connection hub and /metrics to Prometheus.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	hub := NewHub(s.sizer, s.metrics, s.cfg.HistorySize)
	hub.conn = conn
	go hub.handleRequest(ctx)
	go hub.handleResponse(ctx)

	peer := log.WithField("remote", conn.RemoteAddr().String())
	peer.Info("client connected")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				peer.WithError(err).Warn("read failed")
			}
			break
		}
		select {
		case hub.msg <- msg:
		case <-ctx.Done():
			return
		}
	}
	peer.Info("client disconnected")
}

// Serve listens until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", s.cfg.Addr).Info("sizing server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
