package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"noteful/internal/delivery/http/controllers"
	"noteful/internal/delivery/http/helpers"
)

// resource is the set of handlers behind one collection path.
type resource interface {
	List(http.ResponseWriter, *http.Request)
	GetByID(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// handleResource registers the five CRUD routes under prefix. The collection
// is reachable with and without a trailing slash.
func handleResource(mux *http.ServeMux, prefix string, res resource) {
	mux.HandleFunc("GET "+prefix, res.List)
	mux.HandleFunc("GET "+prefix+"/{$}", res.List)
	mux.HandleFunc("POST "+prefix, res.Create)
	mux.HandleFunc("POST "+prefix+"/{$}", res.Create)
	mux.HandleFunc("GET "+prefix+"/{id}", res.GetByID)
	mux.HandleFunc("PUT "+prefix+"/{id}", res.Update)
	mux.HandleFunc("DELETE "+prefix+"/{id}", res.Delete)
}

// NewRouter initializes the HTTP router with all application routes.
// Anything unmatched gets the JSON not-found response.
func NewRouter(folders *controllers.FolderController, tags *controllers.TagController, notes *controllers.NoteController) *http.ServeMux {
	mux := http.NewServeMux()

	handleResource(mux, "/folders", folders)
	handleResource(mux, "/tags", tags)
	handleResource(mux, "/notes", notes)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", helpers.NotFound)
	return mux
}
