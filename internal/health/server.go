package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server is a minimal liveness responder. Hosting platforms require an
// open port even though the bot itself only long-polls outward.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer creates a liveness server bound to the given port
func NewServer(port string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleProbe)
	mux.HandleFunc("/healthz", handleProbe)

	return &Server{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func handleProbe(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Run serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("Health server started", zap.String("addr", s.srv.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.srv.Shutdown(shutdownCtx)
}
