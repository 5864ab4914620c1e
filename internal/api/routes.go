package api

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the resource handlers on r. Path parameters are
// {email} and {id}; {id} must be an integer.
func RegisterRoutes(r chi.Router, users *UserHandler, lists *ListHandler, products *ProductHandler) {
	r.Get("/users", Handle(users.ListUsers))
	r.Route("/users/{email}", func(r chi.Router) {
		r.Get("/", Handle(users.GetUser))
		r.Get("/lists", Handle(lists.ListLists))
		r.Post("/lists", Handle(lists.CreateList))
		r.Get("/lists/{id}", Handle(lists.GetList))
		r.Put("/lists/{id}", Handle(lists.UpdateList))
	})
	r.Get("/products", Handle(products.ListProducts))
	r.Post("/products", Handle(products.CreateProduct))
}
