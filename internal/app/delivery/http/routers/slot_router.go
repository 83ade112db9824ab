package routers

import (
	"valivio-service/internal/app/delivery/http/controllers"
	"valivio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Get("/", slotController.ListAvailable)
	router.With(middlewares.Authenticate).Post("/", slotController.CreateSlot)
	router.With(middlewares.Authenticate).Delete("/{id}", slotController.DeleteSlot)
}
