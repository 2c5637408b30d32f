package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"synthink/internal/controllers"
	"synthink/internal/providers"
	"synthink/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	WebServer *http.Server
	logger    providers.Logger
	tracer    providers.TracingProviderInterface
	conf      *structures.Config
}

func NewApp(healthController *controllers.HealthController, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface, tracer providers.TracingProviderInterface) *App {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, router.GetRoutes(), apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      providers.CorsMiddleware(conf, mux),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		tracer: tracer,
		conf:   conf,
	}
}

// Run serves until ctx is cancelled or the listener fails, then drains open
// requests and flushes pending spans.
func (app *App) Run(ctx context.Context) error {
	defer app.logger.Close()
	app.logger.Infof(providers.TypeApp, "Starting %s %s", app.conf.AppName, app.conf.Version)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", app.WebServer.Addr)
		if err := app.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		app.logger.Infof(providers.TypeApp, "Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := app.WebServer.Shutdown(shutdownCtx)
		if terr := app.tracer.Shutdown(shutdownCtx); terr != nil {
			app.logger.Errorf(providers.TypeApp, "Tracer shutdown error: %s", terr)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	app.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
