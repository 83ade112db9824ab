package routers

import (
	"fmt"
	"net/http"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/delivery/http/controllers"
	"valivio-service/internal/app/delivery/http/middlewares"
	"valivio-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	slotController *controllers.SlotController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	contentController *controllers.ContentController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Use(middlewares.RateLimit())

		r.Route("/slots", func(r chi.Router) {
			attachSlotRoutes(r, middlewares, slotController)
		})

		r.Route("/book", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})

		r.Route("/content", func(r chi.Router) {
			attachContentRoutes(r, middlewares, contentController)
		})

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, slotController, bookingController)
		})
	})

	if internalConfig.App.PublicDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(internalConfig.App.PublicDir)))
	}
}
