package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
	"time"

	"departure-board/core/loader"
	"departure-board/core/logger"
	"departure-board/core/middleware/cors"
	"departure-board/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrPortInUse is returned by Listen when another process holds the port.
var ErrPortInUse = errors.New("address already in use")

// shutdownTimeout bounds how long open connections may delay a stop.
const shutdownTimeout = 5 * time.Second

// Server is the local static file server.
type Server struct {
	app    *fiber.App
	logger *zap.Logger
	loaded []string
}

// New builds the Fiber application with the global middleware and mounts the features.
func New(logg *zap.Logger, features ...loader.Feature) (*Server, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own URLs
	})

	// RayID first so everything after it can be traced
	app.Use(rayid.New())
	app.Use(cors.New())

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := logger.WithRayID(logg, c)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			l.Warn("Request error", append(fields, zap.Error(err))...)
		} else {
			l.Debug("Request served", append(fields, zap.Int("status", c.Response().StatusCode()))...)
		}
		return err
	})

	mgr := loader.NewManager()
	for _, f := range features {
		mgr.Register(f)
	}

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}

	return &Server{app: app, logger: logg, loaded: loaded}, nil
}

// App exposes the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Features returns the names of the loaded features.
func (s *Server) Features() []string {
	return s.loaded
}

// Listen binds host:port. A port conflict is reported as ErrPortInUse with
// the port and a suggested alternative in the message.
func Listen(host string, port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("port %d is already in use, try a different port: departure-board serve %d: %w", port, port+1, ErrPortInUse)
		}
		return nil, fmt.Errorf("error starting server on port %d: %w", port, err)
	}
	return ln, nil
}

// Serve handles requests on ln until ctx is cancelled, then shuts down.
// A cancelled context is a clean stop and returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
		// An interrupt is a clean stop even if connections had to be dropped
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Warn("Forced shutdown", zap.Error(err))
		}
		return nil
	}
}
