package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/ELHF-1458/Routes/pkg/http/router"
	"github.com/ELHF-1458/Routes/pkg/http/router/controllers"
	http_server "github.com/ELHF-1458/Routes/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
	backend controllers.BackendInfo,
) (*Server, error) {
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_TIMEOUT", "60s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g := errgroup.Group{}

	g.Go(func() error {
		return server.Run(
			ctx, config, log,
			useRateLimit, routingService, backend,
		)
	})

	return s, nil
}

// GracefulShutdown blocks until SIGINT/SIGTERM.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return <-quit
}
