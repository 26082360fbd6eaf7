package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/crud"
	"gospelmedia_backend/internals/features/channels/channels/dto"
	"gospelmedia_backend/internals/features/channels/channels/model"
	helper "gospelmedia_backend/internals/helpers"
)

type ChannelController struct {
	DB *gorm.DB
}

func NewChannelController(db *gorm.DB) *ChannelController {
	return &ChannelController{DB: db}
}

/* =========================================================
   CREATE
========================================================= */

func (ctrl *ChannelController) Create() fiber.Handler {
	return crud.Create(ctrl.DB, "channel", func(c *fiber.Ctx) (*model.ChannelModel, []helper.FieldError, error) {
		var body dto.CreateChannelRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, []helper.FieldError{helper.InvalidDataError("body", "")}, nil
		}
		if err := helper.Validate.Struct(body); err != nil {
			return nil, helper.ValidationDetails(err), nil
		}

		return &model.ChannelModel{
			Name:            body.Name,
			Description:     body.Description,
			BannerImageLink: body.BannerImageLink,
			ImageLink:       body.ImageLink,
			TenantID:        helper.TenantID(c),
			UserID:          helper.UserID(c),
			IsActive:        false,
		}, nil, nil
	})
}

/* =========================================================
   LIST variants
========================================================= */

// List returns every active channel, unscoped (public catalogue).
func (ctrl *ChannelController) List() fiber.Handler {
	return crud.List[model.ChannelModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{Filter: map[string]interface{}{"is_active": true}}
	})
}

// ListAll includes suspended channels.
func (ctrl *ChannelController) ListAll() fiber.Handler {
	return crud.List[model.ChannelModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{}
	})
}

// ListAuth returns the calling user's own channels.
func (ctrl *ChannelController) ListAuth() fiber.Handler {
	return crud.List[model.ChannelModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{TenantScoped: true}
	})
}

// ListUser returns the channels owned by ?userId=, suspended ones
// included so owners see channels they have not published yet. The query
// param must name the caller; anything else is treated as an unknown
// resource.
func (ctrl *ChannelController) ListUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" || userID != helper.UserID(c) {
			return helper.NotFound(c)
		}
		return crud.List[model.ChannelModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
			return crud.ListSpec{Filter: map[string]interface{}{"user_id": userID}}
		})(c)
	}
}

func (ctrl *ChannelController) ListOne() fiber.Handler {
	return crud.ListOne[model.ChannelModel](ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{}
	})
}

/* =========================================================
   UPDATE (partial, owner-scoped)
========================================================= */

func (ctrl *ChannelController) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var body dto.UpdateChannelRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.FailedValidation(c, []helper.FieldError{helper.InvalidDataError("body", "")})
		}

		var doc model.ChannelModel
		err = ctrl.DB.WithContext(c.UserContext()).
			Where("id = ? AND tenant_id = ? AND user_id = ?", id, helper.TenantID(c), helper.UserID(c)).
			First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		if err != nil {
			return helper.StoreError(c, err)
		}

		if body.Name != nil {
			doc.Name = *body.Name
		}
		if body.Description != nil {
			doc.Description = *body.Description
		}
		if body.BannerImageLink != nil {
			doc.BannerImageLink = *body.BannerImageLink
		}
		if body.ImageLink != nil {
			doc.ImageLink = *body.ImageLink
		}

		if err := ctrl.DB.WithContext(c.UserContext()).Save(&doc).Error; err != nil {
			return helper.StoreError(c, err)
		}
		return helper.Success(c, &doc)
	}
}

/* =========================================================
   LIFECYCLE
========================================================= */

func (ctrl *ChannelController) Suspend() fiber.Handler {
	return crud.Suspend[model.ChannelModel](ctrl.DB, true)
}

func (ctrl *ChannelController) Unsuspend() fiber.Handler {
	return crud.Unsuspend[model.ChannelModel](ctrl.DB, true)
}

func (ctrl *ChannelController) Remove() fiber.Handler {
	return crud.Remove[model.ChannelModel](ctrl.DB, true)
}

func (ctrl *ChannelController) RemoveTotal() fiber.Handler {
	return crud.RemoveTotal[model.ChannelModel](ctrl.DB, true)
}

/* =========================================================
   VERIFY (elevated roles only)
========================================================= */

// Verify flips is_verified from a yes/no instruction. The route gates it
// to elevated roles; the lookup is deliberately unscoped so an admin can
// verify any tenant's channel.
func (ctrl *ChannelController) Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var body dto.VerifyChannelRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.FailedValidation(c, []helper.FieldError{helper.RequiredError("verify")})
		}

		var verified bool
		switch strings.ToLower(body.Verify) {
		case "yes":
			verified = true
		case "no":
			verified = false
		default:
			return helper.FailedValidation(c, []helper.FieldError{helper.InvalidDataError("verify", body.Verify)})
		}

		var doc model.ChannelModel
		err = ctrl.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		if err != nil {
			return helper.StoreError(c, err)
		}

		doc.IsVerified = verified
		if err := ctrl.DB.WithContext(c.UserContext()).Save(&doc).Error; err != nil {
			return helper.StoreError(c, err)
		}
		return helper.Success(c, &doc)
	}
}
