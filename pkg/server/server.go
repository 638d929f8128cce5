package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Server struct {
	*http.Server
	*http.ServeMux
}

func NewServer(port int) *Server {
	mux := http.NewServeMux()
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &Server{
		Server:   server,
		ServeMux: mux,
	}
}

// ListenAndServeContext serves until the context is done and
// shuts down the server gracefully afterwards.
func (s *Server) ListenAndServeContext(ctx context.Context, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info("listening on {{address}}", "address", s.Addr)
		serverErr <- s.ListenAndServe()
	}()
	var err error
	select {
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down server")
		err = s.Shutdown(ctx)
	case err = <-serverErr:
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
