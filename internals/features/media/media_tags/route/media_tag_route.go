package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagController "gospelmedia_backend/internals/features/media/media_tags/controller"
	"gospelmedia_backend/internals/fieldcipher"
	"gospelmedia_backend/internals/middlewares/auth"
)

// MediaTagRoutes mounts under /media/data/tag. Tags have no hard delete;
// DELETE is the soft variant.
func MediaTagRoutes(r fiber.Router, db *gorm.DB, cipher *fieldcipher.Cipher) {
	ctrl := tagController.NewMediaTagController(db, cipher)

	r.Get("/", ctrl.List())
	r.Get("/:id", ctrl.ListOne())

	r.Post("/", auth.AuthMiddleware(), ctrl.Create())
	r.Put("/suspend/:id", auth.AuthMiddleware(), ctrl.Suspend())
	r.Put("/unsuspend/:id", auth.AuthMiddleware(), ctrl.Unsuspend())
	r.Put("/feature/:id", auth.AuthMiddleware(), ctrl.Feature())
	r.Put("/unfeature/:id", auth.AuthMiddleware(), ctrl.Unfeature())
	r.Put("/:id", auth.AuthMiddleware(), ctrl.Update())
	r.Delete("/:id", auth.AuthMiddleware(), ctrl.Remove())
}
