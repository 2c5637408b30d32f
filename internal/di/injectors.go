//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"synthink/internal"
	"synthink/internal/controllers"
	"synthink/internal/providers"
	"synthink/internal/services"
	"synthink/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewTracingProvider,
		providers.NewGenerativeProvider,

		services.NewPoemService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
