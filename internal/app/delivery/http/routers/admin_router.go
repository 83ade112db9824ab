package routers

import (
	"valivio-service/internal/app/delivery/http/controllers"
	"valivio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	slotController *controllers.SlotController,
	bookingController *controllers.BookingController,
) {
	router.Use(middlewares.Authenticate)
	router.Get("/slots", slotController.ListSlots)
	router.Delete("/bookings/{id}", bookingController.CancelBooking)
}
