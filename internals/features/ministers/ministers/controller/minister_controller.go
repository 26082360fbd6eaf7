package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/crud"
	"gospelmedia_backend/internals/features/ministers/ministers/dto"
	"gospelmedia_backend/internals/features/ministers/ministers/model"
	"gospelmedia_backend/internals/fieldcipher"
	helper "gospelmedia_backend/internals/helpers"
)

type MinisterController struct {
	DB     *gorm.DB
	Cipher *fieldcipher.Cipher
}

func NewMinisterController(db *gorm.DB, cipher *fieldcipher.Cipher) *MinisterController {
	return &MinisterController{DB: db, Cipher: cipher}
}

/* =========================================================
   CREATE
========================================================= */

func (ctrl *MinisterController) Create() fiber.Handler {
	return crud.Create(ctrl.DB, "minister", func(c *fiber.Ctx) (*model.MinisterModel, []helper.FieldError, error) {
		var body dto.CreateMinisterRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, []helper.FieldError{helper.InvalidDataError("body", "")}, nil
		}
		if err := helper.Validate.Struct(body); err != nil {
			return nil, helper.ValidationDetails(err), nil
		}

		nameHash := ctrl.Cipher.NameHash(body.Name)
		var count int64
		err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MinisterModel{}).
			Where("name_hash = ?", nameHash).Count(&count).Error
		if err != nil {
			return nil, nil, err
		}
		if count > 0 {
			return nil, []helper.FieldError{helper.DuplicateError("name", body.Name)}, nil
		}

		var prettyName *string
		if body.PrettyName != "" {
			err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MinisterModel{}).
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

		doc := &model.MinisterModel{
			NameHash:    nameHash,
			SecretName:  secretName,
			SecretImage: secretImage,
			PrettyName:  prettyName,
			Ministry:    body.Ministry,
			CoreType:    body.CoreType,
			Office:      body.Office,
			TenantID:    helper.TenantID(c),
			UserID:      helper.UserID(c),
			IsActive:    false,
		}
		doc.Open(ctrl.Cipher)
		return doc, nil, nil
	})
}

/* =========================================================
   LIST (unscoped catalogue)
========================================================= */

func (ctrl *MinisterController) List() fiber.Handler {
	return crud.List(ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{Filter: map[string]interface{}{"is_active": true}}
	}, func(m *model.MinisterModel) { m.Open(ctrl.Cipher) })
}

func (ctrl *MinisterController) ListOne() fiber.Handler {
	return crud.ListOne(ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{}
	}, func(m *model.MinisterModel) { m.Open(ctrl.Cipher) })
}

/* =========================================================
   UPDATE
========================================================= */

// Update re-validates name uniqueness only when the name actually changes.
func (ctrl *MinisterController) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var body dto.UpdateMinisterRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.FailedValidation(c, []helper.FieldError{helper.InvalidDataError("body", "")})
		}
		if err := helper.Validate.Struct(body); err != nil {
			return helper.FailedValidation(c, helper.ValidationDetails(err))
		}

		var doc model.MinisterModel
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
			newHash := ctrl.Cipher.NameHash(*body.Name)
			if newHash != doc.NameHash {
				var count int64
				err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MinisterModel{}).
					Where("name_hash = ?", newHash).Count(&count).Error
				if err != nil {
					return helper.StoreError(c, err)
				}
				if count > 0 {
					return helper.FailedValidation(c, []helper.FieldError{helper.DuplicateError("name", *body.Name)})
				}
				doc.NameHash = newHash
				if doc.SecretName, err = ctrl.Cipher.EncryptField(*body.Name); err != nil {
					return helper.StoreError(c, err)
				}
			}
		}
		if body.PrettyName != nil && (doc.PrettyName == nil || *doc.PrettyName != *body.PrettyName) {
			var count int64
			err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MinisterModel{}).
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
		if body.Office != nil {
			doc.Office = *body.Office
		}
		if body.Ministry != nil {
			doc.Ministry = *body.Ministry
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
   LIFECYCLE (ministers are hard-deleted)
========================================================= */

func (ctrl *MinisterController) Suspend() fiber.Handler {
	return crud.Suspend[model.MinisterModel](ctrl.DB, false)
}

func (ctrl *MinisterController) Unsuspend() fiber.Handler {
	return crud.Unsuspend[model.MinisterModel](ctrl.DB, false)
}

func (ctrl *MinisterController) Feature() fiber.Handler {
	return crud.Feature[model.MinisterModel](ctrl.DB, false)
}

func (ctrl *MinisterController) Unfeature() fiber.Handler {
	return crud.Unfeature[model.MinisterModel](ctrl.DB, false)
}

func (ctrl *MinisterController) RemoveTotal() fiber.Handler {
	return crud.RemoveTotal[model.MinisterModel](ctrl.DB, false)
}
