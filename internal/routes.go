package internal

import (
	"net/http"
	"synthink/internal/controllers"
	"synthink/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/{$}", http.HandlerFunc(apiController.Root))
	routers.Post("/api/generate", http.HandlerFunc(apiController.Generate))
	routers.Get("/api/suggestions", http.HandlerFunc(apiController.Suggestions))
	return routers
}
