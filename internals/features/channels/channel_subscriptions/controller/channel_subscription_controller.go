package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	"gospelmedia_backend/internals/features/channels/channel_subscriptions/model"
	helper "gospelmedia_backend/internals/helpers"
)

type ChannelSubscriptionController struct {
	DB *gorm.DB
}

func NewChannelSubscriptionController(db *gorm.DB) *ChannelSubscriptionController {
	return &ChannelSubscriptionController{DB: db}
}

/* =========================================================
   READ
========================================================= */

// ListUserSubscriptions returns the caller's subscription rows with the
// channel expanded.
func (ctrl *ChannelSubscriptionController) ListUserSubscriptions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []model.ChannelSubscriptionModel
		err := ctrl.DB.WithContext(c.UserContext()).
			Where("user_id = ? AND tenant_id = ?", helper.UserID(c), helper.TenantID(c)).
			Preload("Channel").
			Order("created_at DESC").
			Find(&rows).Error
		if err != nil {
			return helper.StoreError(c, err)
		}
		if rows == nil {
			rows = []model.ChannelSubscriptionModel{}
		}
		return helper.Success(c, rows)
	}
}

// ListOneSubscription looks up the caller's row for one channel; a missing
// row is SUCCESS with an empty list, not NOT_FOUND, so clients can render
// an unsubscribed state from the same call.
func (ctrl *ChannelSubscriptionController) ListOneSubscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		channelID, err := uuid.Parse(c.Params("channelId"))
		if err != nil {
			return helper.NotFound(c)
		}

		var row model.ChannelSubscriptionModel
		err = ctrl.DB.WithContext(c.UserContext()).
			Where("user_id = ? AND channel_id = ? AND tenant_id = ?",
				helper.UserID(c), channelID, helper.TenantID(c)).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, []model.ChannelSubscriptionModel{})
		}
		if err != nil {
			return helper.StoreError(c, err)
		}
		return helper.Success(c, &row)
	}
}

/* =========================================================
   SUBSCRIBE / UNSUBSCRIBE
========================================================= */

// Subscribe upserts the caller's row for the channel and bumps the channel
// counter atomically, but only when the row actually transitions to
// subscribed. Repeat calls are idempotent.
func (ctrl *ChannelSubscriptionController) Subscribe() fiber.Handler {
	return ctrl.setSubscription(true, func(sub *model.ChannelSubscriptionModel) (delta int64) {
		if !sub.Subscribed {
			delta = 1
		}
		sub.Subscribed = true
		return delta
	})
}

// Unsubscribe clears both flags and decrements the counter, guarded so it
// never goes negative. A caller with no row gets SUCCESS and nothing is
// persisted.
func (ctrl *ChannelSubscriptionController) Unsubscribe() fiber.Handler {
	return ctrl.setSubscription(false, func(sub *model.ChannelSubscriptionModel) (delta int64) {
		if sub.Subscribed {
			delta = -1
		}
		sub.Subscribed = false
		sub.NotifyMe = false
		return delta
	})
}

// Notify turns on notifications; it implies a subscription but does not
// touch the counter on its own (Subscribe owns the increment transition).
func (ctrl *ChannelSubscriptionController) Notify() fiber.Handler {
	return ctrl.setSubscription(true, func(sub *model.ChannelSubscriptionModel) int64 {
		sub.Subscribed = true
		sub.NotifyMe = true
		return 0
	})
}

func (ctrl *ChannelSubscriptionController) Unnotify() fiber.Handler {
	return ctrl.setSubscription(false, func(sub *model.ChannelSubscriptionModel) int64 {
		sub.NotifyMe = false
		return 0
	})
}

// setSubscription loads the caller's row, applies the mutation and
// persists both the row and the channel counter in one transaction. Only
// the subscribing verbs may create a missing row; the clearing verbs
// answer SUCCESS without touching the store.
func (ctrl *ChannelSubscriptionController) setSubscription(create bool, mutate func(*model.ChannelSubscriptionModel) int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		channelID, err := uuid.Parse(c.Params("channelId"))
		if err != nil {
			return helper.NotFound(c, fiber.Map{"msg": "Channel Not Found"})
		}

		var sub model.ChannelSubscriptionModel
		persisted := false
		err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			var channel channelModel.ChannelModel
			if err := tx.Where("id = ? AND tenant_id = ?", channelID, helper.TenantID(c)).
				First(&channel).Error; err != nil {
				return err
			}

			err := tx.Where("user_id = ? AND channel_id = ? AND tenant_id = ?",
				helper.UserID(c), channelID, helper.TenantID(c)).
				First(&sub).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if !create {
					return nil
				}
				sub = model.ChannelSubscriptionModel{
					ChannelID: channelID,
					TenantID:  helper.TenantID(c),
					UserID:    helper.UserID(c),
				}
			} else if err != nil {
				return err
			}
			persisted = true

			delta := mutate(&sub)
			if err := tx.Save(&sub).Error; err != nil {
				return err
			}

			switch {
			case delta > 0:
				return tx.Model(&channelModel.ChannelModel{}).
					Where("id = ?", channelID).
					UpdateColumn("subscribers", gorm.Expr("subscribers + ?", delta)).Error
			case delta < 0:
				return tx.Model(&channelModel.ChannelModel{}).
					Where("id = ? AND subscribers > 0", channelID).
					UpdateColumn("subscribers", gorm.Expr("subscribers - ?", -delta)).Error
			}
			return nil
		})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, fiber.Map{"msg": "Channel Not Found"})
		}
		if err != nil {
			return helper.StoreError(c, err)
		}
		if !persisted {
			return helper.Success(c, nil)
		}
		return helper.Success(c, &sub)
	}
}
