package http

import (
	"log/slog"
	"net/http"

	"github.com/freshpantry/stockroom/internal/application"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func NewRouter(handler *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", handler.register)
		r.Post("/auth/login", handler.login)
		r.Post("/messages", handler.sendMessage)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)

			r.Post("/auth/logout", handler.logout)

			r.Route("/stock", func(r chi.Router) {
				r.Get("/", handler.listStock)
				r.Post("/", handler.addStockEntry)
				r.Get("/owner/{owner}", handler.listStockByOwner)
				r.Delete("/{product_id}", handler.deleteProduct)
			})

			r.Route("/basket", func(r chi.Router) {
				r.Get("/", handler.listBasket)
				r.Post("/items", handler.addToBasket)
				r.Post("/items/{basket_item_id}/return", handler.returnToStock)
				r.Post("/confirm", handler.confirmPurchase)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", handler.listUsers)
				r.Put("/users/{user_id}", handler.updateUser)
				r.Delete("/users/{user_id}", handler.deleteUser)
				r.Get("/messages", handler.listMessages)
			})
		})
	})
	return r
}
