package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/crud"
	"gospelmedia_backend/internals/features/media/media_tags/dto"
	"gospelmedia_backend/internals/features/media/media_tags/model"
	"gospelmedia_backend/internals/fieldcipher"
	helper "gospelmedia_backend/internals/helpers"
)

type MediaTagController struct {
	DB     *gorm.DB
	Cipher *fieldcipher.Cipher
}

func NewMediaTagController(db *gorm.DB, cipher *fieldcipher.Cipher) *MediaTagController {
	return &MediaTagController{DB: db, Cipher: cipher}
}

/* =========================================================
   CREATE
========================================================= */

// Create encrypts name and image before persisting; the deterministic
// name hash is both the duplicate check and the lookup key.
func (ctrl *MediaTagController) Create() fiber.Handler {
	return crud.Create(ctrl.DB, "media tag", func(c *fiber.Ctx) (*model.MediaTagModel, []helper.FieldError, error) {
		var body dto.CreateMediaTagRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, []helper.FieldError{helper.InvalidDataError("body", "")}, nil
		}
		if err := helper.Validate.Struct(body); err != nil {
			return nil, helper.ValidationDetails(err), nil
		}

		nameHash := ctrl.Cipher.NameHash(body.Name)
		var count int64
		err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MediaTagModel{}).
			Where("name_hash = ?", nameHash).Count(&count).Error
		if err != nil {
			return nil, nil, err
		}
		if count > 0 {
			return nil, []helper.FieldError{helper.DuplicateError("name", body.Name)}, nil
		}

		var prettyName *string
		if body.PrettyName != "" {
			err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MediaTagModel{}).
				Where("pretty_name = ?", body.PrettyName).Count(&count).Error
			if err != nil {
				return nil, nil, err
			}
			if count > 0 {
				return nil, []helper.FieldError{helper.DuplicateError("prettyName", body.PrettyName)}, nil
			}
			prettyName = &body.PrettyName
		}

		secretName, err := ctrl.Cipher.EncryptField(body.Name)
		if err != nil {
			return nil, nil, err
		}
		secretImage, err := ctrl.Cipher.EncryptField(body.Image)
		if err != nil {
			return nil, nil, err
		}

		doc := &model.MediaTagModel{
			NameHash:    nameHash,
			SecretName:  secretName,
			SecretImage: secretImage,
			PrettyName:  prettyName,
			CoreType:    body.CoreType,
			TenantID:    helper.TenantID(c),
			UserID:      helper.UserID(c),
			IsActive:    false,
		}
		doc.Open(ctrl.Cipher)
		return doc, nil, nil
	})
}

/* =========================================================
   LIST (unscoped catalogue, decrypted on the way out)
========================================================= */

func (ctrl *MediaTagController) List() fiber.Handler {
	return crud.List(ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{Filter: map[string]interface{}{"is_active": true}}
	}, func(m *model.MediaTagModel) { m.Open(ctrl.Cipher) })
}

func (ctrl *MediaTagController) ListOne() fiber.Handler {
	return crud.ListOne(ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{}
	}, func(m *model.MediaTagModel) { m.Open(ctrl.Cipher) })
}

/* =========================================================
   UPDATE
========================================================= */

// Update recomputes the hash when the name changes; duplicate collisions
// are left to the unique index backstop.
func (ctrl *MediaTagController) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var body dto.UpdateMediaTagRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.FailedValidation(c, []helper.FieldError{helper.InvalidDataError("body", "")})
		}
		if err := helper.Validate.Struct(body); err != nil {
			return helper.FailedValidation(c, helper.ValidationDetails(err))
		}

		var doc model.MediaTagModel
		err = ctrl.DB.WithContext(c.UserContext()).
			Where("id = ?", id).
			First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		if err != nil {
			return helper.StoreError(c, err)
		}

		if body.Name != nil {
			doc.NameHash = ctrl.Cipher.NameHash(*body.Name)
			if doc.SecretName, err = ctrl.Cipher.EncryptField(*body.Name); err != nil {
				return helper.StoreError(c, err)
			}
		}
		if body.PrettyName != nil && (doc.PrettyName == nil || *doc.PrettyName != *body.PrettyName) {
			var count int64
			err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MediaTagModel{}).
				Where("pretty_name = ?", *body.PrettyName).Count(&count).Error
			if err != nil {
				return helper.StoreError(c, err)
			}
			if count > 0 {
				return helper.FailedValidation(c, []helper.FieldError{helper.DuplicateError("prettyName", *body.PrettyName)})
			}
			doc.PrettyName = body.PrettyName
		}
		if body.Image != nil {
			if doc.SecretImage, err = ctrl.Cipher.EncryptField(*body.Image); err != nil {
				return helper.StoreError(c, err)
			}
		}
		if body.CoreType != nil {
			doc.CoreType = *body.CoreType
		}

		if err := ctrl.DB.WithContext(c.UserContext()).Save(&doc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				name := doc.Name
				if body.Name != nil {
					name = *body.Name
				}
				return helper.FailedValidation(c, []helper.FieldError{helper.DuplicateError("name", name)})
			}
			return helper.StoreError(c, err)
		}
		doc.Open(ctrl.Cipher)
		return helper.Success(c, &doc)
	}
}

/* =========================================================
   LIFECYCLE (tags are never hard-deleted)
========================================================= */

func (ctrl *MediaTagController) Suspend() fiber.Handler {
	return crud.Suspend[model.MediaTagModel](ctrl.DB, false)
}

func (ctrl *MediaTagController) Unsuspend() fiber.Handler {
	return crud.Unsuspend[model.MediaTagModel](ctrl.DB, false)
}

func (ctrl *MediaTagController) Feature() fiber.Handler {
	return crud.Feature[model.MediaTagModel](ctrl.DB, false)
}

func (ctrl *MediaTagController) Unfeature() fiber.Handler {
	return crud.Unfeature[model.MediaTagModel](ctrl.DB, false)
}

func (ctrl *MediaTagController) Remove() fiber.Handler {
	return crud.Remove[model.MediaTagModel](ctrl.DB, false)
}
