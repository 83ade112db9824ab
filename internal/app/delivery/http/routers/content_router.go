package routers

import (
	"valivio-service/internal/app/delivery/http/controllers"
	"valivio-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachContentRoutes(router chi.Router, _ *middlewares.Middlewares, contentController *controllers.ContentController) {
	router.Get("/faq", contentController.GetFAQ)
	router.Get("/audience", contentController.GetAudience)
	router.Get("/about", contentController.GetAbout)
}
