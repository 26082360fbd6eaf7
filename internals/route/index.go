package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	channelLinkRoutes "gospelmedia_backend/internals/features/channels/channel_links/route"
	subscriptionRoutes "gospelmedia_backend/internals/features/channels/channel_subscriptions/route"
	channelRoutes "gospelmedia_backend/internals/features/channels/channels/route"
	mediaRoutes "gospelmedia_backend/internals/features/media/media/route"
	tagRoutes "gospelmedia_backend/internals/features/media/media_tags/route"
	ministerRoutes "gospelmedia_backend/internals/features/ministers/ministers/route"
	"gospelmedia_backend/internals/fieldcipher"
	"gospelmedia_backend/internals/logger"
)

// SetupRoutes wires every feature group. Tag routes go on before the media
// group so /media/data/tag is matched ahead of /media/:id.
func SetupRoutes(app *fiber.App, db *gorm.DB, cipher *fieldcipher.Cipher) {
	logger.Log.Info().Msg("[INFO] Mounting Channel routes...")
	channel := app.Group("/channel")
	channelLinkRoutes.ChannelLinkRoutes(channel.Group("/link"), db)
	channelRoutes.ChannelRoutes(channel, db)
	subscriptionRoutes.ChannelSubscriptionRoutes(channel, db)

	logger.Log.Info().Msg("[INFO] Mounting Media routes...")
	tagRoutes.MediaTagRoutes(app.Group("/media/data/tag"), db, cipher)
	mediaRoutes.MediaRoutes(app.Group("/media"), db, cipher)

	logger.Log.Info().Msg("[INFO] Mounting Minister routes...")
	ministerRoutes.MinisterRoutes(app.Group("/minister"), db, cipher)
}
