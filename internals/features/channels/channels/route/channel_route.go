package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/constants"
	channelController "gospelmedia_backend/internals/features/channels/channels/controller"
	"gospelmedia_backend/internals/middlewares/auth"
)

// ChannelRoutes mounts under /channel. Reads are public; everything that
// writes resolves the caller first.
func ChannelRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := channelController.NewChannelController(db)

	r.Get("/data/", ctrl.List())
	r.Get("/data/all", ctrl.ListAll())
	r.Get("/auth/data/", auth.AuthMiddleware(), ctrl.ListAuth())
	r.Get("/user/data/", auth.AuthMiddleware(), ctrl.ListUser())
	r.Get("/data/:id", ctrl.ListOne())

	r.Post("/data", auth.AuthMiddleware(), ctrl.Create())
	r.Put("/data/suspend/:id", auth.AuthMiddleware(), ctrl.Suspend())
	r.Put("/data/unsuspend/:id", auth.AuthMiddleware(), ctrl.Unsuspend())
	r.Put("/data/:id", auth.AuthMiddleware(), ctrl.Update())
	r.Put("/verify/:id", auth.AuthMiddleware(), auth.OnlyRoles(constants.ElevatedRoles...), ctrl.Verify())
	r.Delete("/data/total/:id", auth.AuthMiddleware(), ctrl.RemoveTotal())
	r.Delete("/data/:id", auth.AuthMiddleware(), ctrl.Remove())
}
