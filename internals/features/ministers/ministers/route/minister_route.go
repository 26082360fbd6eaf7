package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ministerController "gospelmedia_backend/internals/features/ministers/ministers/controller"
	"gospelmedia_backend/internals/fieldcipher"
	"gospelmedia_backend/internals/middlewares/auth"
)

// MinisterRoutes mounts under /minister. DELETE here is permanent.
func MinisterRoutes(r fiber.Router, db *gorm.DB, cipher *fieldcipher.Cipher) {
	ctrl := ministerController.NewMinisterController(db, cipher)

	r.Get("/", ctrl.List())
	r.Get("/:id", ctrl.ListOne())

	r.Post("/", auth.AuthMiddleware(), ctrl.Create())
	r.Put("/suspend/:id", auth.AuthMiddleware(), ctrl.Suspend())
	r.Put("/unsuspend/:id", auth.AuthMiddleware(), ctrl.Unsuspend())
	r.Put("/feature/:id", auth.AuthMiddleware(), ctrl.Feature())
	r.Put("/unfeature/:id", auth.AuthMiddleware(), ctrl.Unfeature())
	r.Put("/:id", auth.AuthMiddleware(), ctrl.Update())
	r.Delete("/:id", auth.AuthMiddleware(), ctrl.RemoveTotal())
}
