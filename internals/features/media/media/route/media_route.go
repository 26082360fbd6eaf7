package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mediaController "gospelmedia_backend/internals/features/media/media/controller"
	"gospelmedia_backend/internals/fieldcipher"
	"gospelmedia_backend/internals/middlewares"
	"gospelmedia_backend/internals/middlewares/auth"
)

// MediaRoutes mounts under /media. Search carries its own tighter rate
// limit. Register /search/result before the :id reads so it is never
// swallowed by the param route.
func MediaRoutes(r fiber.Router, db *gorm.DB, cipher *fieldcipher.Cipher) {
	ctrl := mediaController.NewMediaController(db, cipher)

	r.Post("/search/result", middlewares.SearchRateLimiter(), ctrl.Search())
	r.Get("/", ctrl.List())
	r.Get("/:id", ctrl.ListOne())

	r.Post("/", auth.AuthMiddleware(), ctrl.Create())
	r.Put("/suspend/:id", auth.AuthMiddleware(), ctrl.Suspend())
	r.Put("/unsuspend/:id", auth.AuthMiddleware(), ctrl.Unsuspend())
	r.Put("/:id", auth.AuthMiddleware(), ctrl.Update())
	r.Delete("/total/:id", auth.AuthMiddleware(), ctrl.RemoveTotal())
	r.Delete("/:id", auth.AuthMiddleware(), ctrl.Remove())
}
