package providers

import (
	"net/http"
	"synthink/internal/structures"

	"github.com/rs/cors"
)

// CorsMiddleware lets browser clients served from other origins call the API.
// Preflight requests are answered with 200 so that older clients accept them.
func CorsMiddleware(conf *structures.Config, next http.Handler) http.Handler {
	origins := conf.Cors.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:       origins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler(next)
}
