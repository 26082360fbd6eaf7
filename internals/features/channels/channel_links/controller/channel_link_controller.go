package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/crud"
	"gospelmedia_backend/internals/features/channels/channel_links/dto"
	"gospelmedia_backend/internals/features/channels/channel_links/model"
	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	helper "gospelmedia_backend/internals/helpers"
)

type ChannelLinkController struct {
	DB *gorm.DB
}

func NewChannelLinkController(db *gorm.DB) *ChannelLinkController {
	return &ChannelLinkController{DB: db}
}

/* =========================================================
   CREATE
========================================================= */

func (ctrl *ChannelLinkController) Create() fiber.Handler {
	return crud.Create(ctrl.DB, "channel link", func(c *fiber.Ctx) (*model.ChannelLinkModel, []helper.FieldError, error) {
		var body dto.CreateChannelLinkRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, []helper.FieldError{helper.InvalidDataError("body", "")}, nil
		}
		if err := helper.Validate.Struct(body); err != nil {
			return nil, helper.ValidationDetails(err), nil
		}

		channels, detail, err := ctrl.resolveChannels(c, body.MediaChannel)
		if err != nil {
			return nil, nil, err
		}
		if detail != nil {
			return nil, []helper.FieldError{*detail}, nil
		}

		return &model.ChannelLinkModel{
			LinkKey:   body.LinkKey,
			LinkValue: body.LinkValue,
			Channels:  channels,
			TenantID:  helper.TenantID(c),
			UserID:    helper.UserID(c),
			IsActive:  false,
		}, nil, nil
	})
}

/* =========================================================
   LIST
========================================================= */

func (ctrl *ChannelLinkController) List() fiber.Handler {
	return crud.List[model.ChannelLinkModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{
			TenantScoped: true,
			Filter:       map[string]interface{}{"is_active": true},
			Preloads:     []string{"Channels"},
		}
	})
}

func (ctrl *ChannelLinkController) ListOne() fiber.Handler {
	return crud.ListOne[model.ChannelLinkModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{TenantScoped: true, Preloads: []string{"Channels"}}
	})
}

/* =========================================================
   UPDATE
========================================================= */

func (ctrl *ChannelLinkController) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var body dto.UpdateChannelLinkRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.FailedValidation(c, []helper.FieldError{helper.InvalidDataError("body", "")})
		}

		var doc model.ChannelLinkModel
		err = ctrl.DB.WithContext(c.UserContext()).
			Where("id = ? AND tenant_id = ? AND user_id = ?", id, helper.TenantID(c), helper.UserID(c)).
			First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		if err != nil {
			return helper.StoreError(c, err)
		}

		if body.LinkKey != nil {
			doc.LinkKey = *body.LinkKey
		}
		if body.LinkValue != nil {
			doc.LinkValue = *body.LinkValue
		}

		if err := ctrl.DB.WithContext(c.UserContext()).Save(&doc).Error; err != nil {
			return helper.StoreError(c, err)
		}

		if len(body.MediaChannel) > 0 {
			channels, detail, err := ctrl.resolveChannels(c, body.MediaChannel)
			if err != nil {
				return helper.StoreError(c, err)
			}
			if detail != nil {
				return helper.FailedValidation(c, []helper.FieldError{*detail})
			}

			assoc := ctrl.DB.WithContext(c.UserContext()).Model(&doc).Association("Channels")
			if body.ReplaceAssociations {
				err = assoc.Replace(toRefs(channels))
			} else {
				err = assoc.Append(toRefs(channels))
			}
			if err != nil {
				return helper.StoreError(c, err)
			}
		}

		err = ctrl.DB.WithContext(c.UserContext()).Preload("Channels").
			Where("id = ?", id).First(&doc).Error
		if err != nil {
			return helper.StoreError(c, err)
		}
		return helper.Success(c, &doc)
	}
}

/* =========================================================
   LIFECYCLE
========================================================= */

func (ctrl *ChannelLinkController) Suspend() fiber.Handler {
	return crud.Suspend[model.ChannelLinkModel](ctrl.DB, true)
}

func (ctrl *ChannelLinkController) Unsuspend() fiber.Handler {
	return crud.Unsuspend[model.ChannelLinkModel](ctrl.DB, true)
}

func (ctrl *ChannelLinkController) Remove() fiber.Handler {
	return crud.Remove[model.ChannelLinkModel](ctrl.DB, true)
}

func (ctrl *ChannelLinkController) RemoveTotal() fiber.Handler {
	return crud.RemoveTotal[model.ChannelLinkModel](ctrl.DB, true)
}

// resolveChannels loads the referenced channels; an unknown or malformed
// id yields a validation detail rather than a silent skip.
func (ctrl *ChannelLinkController) resolveChannels(c *fiber.Ctx, refs helper.FlexStrings) ([]channelModel.ChannelModel, *helper.FieldError, error) {
	if len(refs) == 0 {
		return nil, nil, nil
	}

	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		id, err := uuid.Parse(ref)
		if err != nil {
			detail := helper.InvalidDataError("mediaChannel", ref)
			return nil, &detail, nil
		}
		ids = append(ids, id)
	}

	var channels []channelModel.ChannelModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where("id IN ?", ids).Find(&channels).Error; err != nil {
		return nil, nil, err
	}
	if len(channels) != len(ids) {
		detail := helper.InvalidDataError("mediaChannel", "unknown channel")
		return nil, &detail, nil
	}
	return channels, nil, nil
}

func toRefs(channels []channelModel.ChannelModel) []*channelModel.ChannelModel {
	out := make([]*channelModel.ChannelModel, len(channels))
	for i := range channels {
		out[i] = &channels[i]
	}
	return out
}
