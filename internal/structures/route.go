package structures

import "net/http"

// Route is one entry of the API route table. Url is a ServeMux pattern.
type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}
