package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	linkController "gospelmedia_backend/internals/features/channels/channel_links/controller"
	"gospelmedia_backend/internals/middlewares/auth"
)

// ChannelLinkRoutes mounts under /channel/link; links are always
// tenant-scoped, so the whole group is authenticated.
func ChannelLinkRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := linkController.NewChannelLinkController(db)

	r.Use(auth.AuthMiddleware())

	r.Post("/data", ctrl.Create())
	r.Get("/data/", ctrl.List())
	r.Get("/data/:id", ctrl.ListOne())
	r.Put("/data/suspend/:id", ctrl.Suspend())
	r.Put("/data/unsuspend/:id", ctrl.Unsuspend())
	r.Put("/data/:id", ctrl.Update())
	r.Delete("/data/total/:id", ctrl.RemoveTotal())
	r.Delete("/data/:id", ctrl.Remove())
}
