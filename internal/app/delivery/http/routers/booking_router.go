package routers

import (
	"valivio-service/internal/app/delivery/http/controllers"
	"valivio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, _ *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.CreateBooking)
}
