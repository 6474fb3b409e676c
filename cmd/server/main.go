package main

import (
	"context"
	"flag"

	"github.com/ELHF-1458/Routes/pkg/http"
	"github.com/ELHF-1458/Routes/pkg/http/router/controllers"
	"github.com/ELHF-1458/Routes/pkg/http/usecases"
	"github.com/ELHF-1458/Routes/pkg/logger"
	"github.com/ELHF-1458/Routes/pkg/matrix"
	"github.com/ELHF-1458/Routes/pkg/osrm"
	"github.com/ELHF-1458/Routes/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		// run on defaults when no config file is present
		log.Warn("config file not loaded, using defaults", zap.Error(err))
	}

	osrmConfig := osrm.DefaultConfig()
	viper.SetDefault("OSRM_BASE", osrmConfig.BaseURL)
	viper.SetDefault("OSRM_TABLE_TIMEOUT", osrm.DefaultTableTimeout)
	viper.SetDefault("OSRM_ROUTE_TIMEOUT", osrm.DefaultRouteTimeout)
	viper.SetDefault("MATRIX_SOURCE", "osrm")
	osrmConfig.BaseURL = viper.GetString("OSRM_BASE")
	osrmConfig.TableTimeout = viper.GetDuration("OSRM_TABLE_TIMEOUT")
	osrmConfig.RouteTimeout = viper.GetDuration("OSRM_ROUTE_TIMEOUT")

	osrmClient := osrm.NewClient(osrmConfig, log)

	var matrixProvider usecases.MatrixProvider = osrmClient
	if viper.GetString("MATRIX_SOURCE") == "haversine" {
		matrixProvider = matrix.NewHaversineProvider(log)
	}

	routingService := usecases.NewRoutingService(log, matrixProvider, osrmClient, osrmClient)
	backend := controllers.BackendInfo{
		BaseURL:     osrmClient.GetBaseURL(),
		ProfileNote: osrmClient.ProfileNote(),
	}

	api := http.NewServer(log)
	ctx, cleanup := NewContext()

	if _, err := api.Use(ctx, log, *useRateLimit, routingService, backend); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	log.Info("Routes server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, cancel
}
