package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionController "gospelmedia_backend/internals/features/channels/channel_subscriptions/controller"
	"gospelmedia_backend/internals/middlewares/auth"
)

// ChannelSubscriptionRoutes mounts under /channel; every route is bound to
// the caller's identity.
func ChannelSubscriptionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subscriptionController.NewChannelSubscriptionController(db)

	r.Get("/user/subscription/", auth.AuthMiddleware(), ctrl.ListUserSubscriptions())
	r.Get("/user/onesubscription/:channelId", auth.AuthMiddleware(), ctrl.ListOneSubscription())
	r.Put("/user/subscription/:channelId", auth.AuthMiddleware(), ctrl.Subscribe())
	r.Put("/user/unsubscription/:channelId", auth.AuthMiddleware(), ctrl.Unsubscribe())
	r.Put("/user/notify/:channelId", auth.AuthMiddleware(), ctrl.Notify())
	r.Put("/user/unnotify/:channelId", auth.AuthMiddleware(), ctrl.Unnotify())
}
