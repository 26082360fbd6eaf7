package controller

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/crud"
	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	"gospelmedia_backend/internals/features/media/media/dto"
	"gospelmedia_backend/internals/features/media/media/model"
	tagModel "gospelmedia_backend/internals/features/media/media_tags/model"
	ministerModel "gospelmedia_backend/internals/features/ministers/ministers/model"
	"gospelmedia_backend/internals/fieldcipher"
	helper "gospelmedia_backend/internals/helpers"
)

type MediaController struct {
	DB     *gorm.DB
	Cipher *fieldcipher.Cipher
}

func NewMediaController(db *gorm.DB, cipher *fieldcipher.Cipher) *MediaController {
	return &MediaController{DB: db, Cipher: cipher}
}

/* =========================================================
   CREATE
========================================================= */

// Create persists a media item. Every field is optional; when no channel
// reference is supplied the caller's first channel is attached.
func (ctrl *MediaController) Create() fiber.Handler {
	return crud.Create(ctrl.DB, "media", func(c *fiber.Ctx) (*model.MediaModel, []helper.FieldError, error) {
		var body dto.CreateMediaRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, []helper.FieldError{helper.InvalidDataError("body", "")}, nil
		}

		var prettyName *string
		if body.PrettyName != "" {
			var count int64
			err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MediaModel{}).
				Where("pretty_name = ?", body.PrettyName).Count(&count).Error
			if err != nil {
				return nil, nil, err
			}
			if count > 0 {
				return nil, []helper.FieldError{helper.DuplicateError("prettyName", body.PrettyName)}, nil
			}
			prettyName = &body.PrettyName
		}

		channels, detail, err := ctrl.resolveChannels(c, body.MediaChannel)
		if err != nil {
			return nil, nil, err
		}
		if detail != nil {
			return nil, []helper.FieldError{*detail}, nil
		}
		if len(channels) == 0 {
			channels, err = ctrl.defaultChannel(c)
			if err != nil {
				return nil, nil, err
			}
		}

		tags, detail, err := ctrl.resolveTags(c, body.MediaTag)
		if err != nil {
			return nil, nil, err
		}
		if detail != nil {
			return nil, []helper.FieldError{*detail}, nil
		}

		ministers, detail, err := ctrl.resolveMinisters(c, "minister", body.Minister)
		if err != nil {
			return nil, nil, err
		}
		if detail != nil {
			return nil, []helper.FieldError{*detail}, nil
		}

		contributing, detail, err := ctrl.resolveMinisters(c, "contributing", body.Contributing)
		if err != nil {
			return nil, nil, err
		}
		if detail != nil {
			return nil, []helper.FieldError{*detail}, nil
		}

		secretSourceLink, err := ctrl.Cipher.EncryptField(body.SourceLink)
		if err != nil {
			return nil, nil, err
		}

		doc := &model.MediaModel{
			Name:             body.Name,
			PrettyName:       prettyName,
			SecretSourceLink: secretSourceLink,
			Note:             body.Note,
			Description:      body.Description,
			MediaType:        body.MediaType,
			MediaLength:      body.MediaLength,
			ThumbnailLink:    toJSONList(body.ThumbnailLink),
			MediaCategory:    toJSONList(body.MediaCategory),
			Channels:         channels,
			Tags:             tags,
			Ministers:        ministers,
			Contributing:     contributing,
			Views:            body.Views,
			Likes:            body.Likes,
			Dislikes:         body.Dislikes,
			Trending:         body.Trending,
			TrendingAt:       body.TrendingAt,
			ScheduleAt:       body.ScheduleAt,
			TenantID:         helper.TenantID(c),
			UserID:           helper.UserID(c),
			IsActive:         false,
		}
		doc.Open(ctrl.Cipher)
		return doc, nil, nil
	})
}

/* =========================================================
   LIST / SEARCH
========================================================= */

func (ctrl *MediaController) List() fiber.Handler {
	return crud.List(ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{
			Filter:   map[string]interface{}{"is_active": true},
			Preloads: []string{"Channels", "Tags", "Ministers"},
		}
	}, ctrl.open)
}

// Search matches on the media name. Postgres uses the full-text index;
// any other dialect (tests run on sqlite) falls back to a LIKE scan. A
// missing filter is NOT_FOUND; a present filter always answers SUCCESS,
// empty result included.
func (ctrl *MediaController) Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SearchMediaRequest
		if err := c.BodyParser(&body); err != nil || body.FilterName == "" {
			return helper.NotFound(c)
		}

		offset := c.QueryInt("offset", 0)
		if offset < 0 {
			offset = 0
		}
		limit := c.QueryInt("limit", 50)
		if limit <= 0 {
			limit = 50
		}

		q := ctrl.DB.WithContext(c.UserContext()).Where("is_active = ?", true)
		if ctrl.DB.Dialector.Name() == "postgres" {
			q = q.Where("to_tsvector('simple', name) @@ plainto_tsquery('simple', ?)", body.FilterName)
		} else {
			q = q.Where("name LIKE ?", "%"+body.FilterName+"%")
		}

		var rows []model.MediaModel
		err := q.Preload("Channels").
			Order("created_at DESC").
			Offset(offset).Limit(limit).
			Find(&rows).Error
		if err != nil {
			return helper.StoreError(c, err)
		}
		if rows == nil {
			rows = []model.MediaModel{}
		}
		for i := range rows {
			ctrl.open(&rows[i])
		}
		return helper.Success(c, rows)
	}
}

func (ctrl *MediaController) ListOne() fiber.Handler {
	return crud.ListOne(ctrl.DB, func(c *fiber.Ctx) crud.ListSpec {
		return crud.ListSpec{Preloads: []string{"Ministers"}}
	}, ctrl.open)
}

/* =========================================================
   UPDATE (association merge)
========================================================= */

// Update merges scalar fields and association references. References append
// by default; replace_associations swaps whole sets. An item left with no
// channel gets the caller's first channel attached.
func (ctrl *MediaController) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var body dto.UpdateMediaRequest
		if err := c.BodyParser(&body); err != nil {
			return helper.FailedValidation(c, []helper.FieldError{helper.InvalidDataError("body", "")})
		}

		var doc model.MediaModel
		err = ctrl.DB.WithContext(c.UserContext()).
			Preload("Channels").
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
		if body.PrettyName != nil && (doc.PrettyName == nil || *doc.PrettyName != *body.PrettyName) {
			var count int64
			err := ctrl.DB.WithContext(c.UserContext()).Model(&model.MediaModel{}).
				Where("pretty_name = ?", *body.PrettyName).Count(&count).Error
			if err != nil {
				return helper.StoreError(c, err)
			}
			if count > 0 {
				return helper.FailedValidation(c, []helper.FieldError{helper.DuplicateError("prettyName", *body.PrettyName)})
			}
			doc.PrettyName = body.PrettyName
		}
		if body.SourceLink != nil {
			if doc.SecretSourceLink, err = ctrl.Cipher.EncryptField(*body.SourceLink); err != nil {
				return helper.StoreError(c, err)
			}
		}
		if body.Note != nil {
			doc.Note = *body.Note
		}
		if body.Description != nil {
			doc.Description = *body.Description
		}
		if body.MediaType != nil {
			doc.MediaType = *body.MediaType
		}
		if body.MediaLength != nil {
			doc.MediaLength = *body.MediaLength
		}
		if body.ScheduleAt != nil {
			doc.ScheduleAt = body.ScheduleAt
		}
		if len(body.ThumbnailLink) > 0 {
			doc.ThumbnailLink = mergeJSONList(doc.ThumbnailLink, body.ThumbnailLink, body.ReplaceAssociations)
		}
		if len(body.MediaCategory) > 0 {
			doc.MediaCategory = mergeJSONList(doc.MediaCategory, body.MediaCategory, body.ReplaceAssociations)
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
			if err := ctrl.mutateAssociation(c, &doc, "Channels", channelRefs(channels), body.ReplaceAssociations); err != nil {
				return helper.StoreError(c, err)
			}
		} else if len(doc.Channels) == 0 {
			channels, err := ctrl.defaultChannel(c)
			if err != nil {
				return helper.StoreError(c, err)
			}
			if len(channels) > 0 {
				if err := ctrl.mutateAssociation(c, &doc, "Channels", channelRefs(channels), false); err != nil {
					return helper.StoreError(c, err)
				}
			}
		}

		if len(body.MediaTag) > 0 {
			tags, detail, err := ctrl.resolveTags(c, body.MediaTag)
			if err != nil {
				return helper.StoreError(c, err)
			}
			if detail != nil {
				return helper.FailedValidation(c, []helper.FieldError{*detail})
			}
			if err := ctrl.mutateAssociation(c, &doc, "Tags", tagRefs(tags), body.ReplaceAssociations); err != nil {
				return helper.StoreError(c, err)
			}
		}

		if len(body.Minister) > 0 {
			ministers, detail, err := ctrl.resolveMinisters(c, "minister", body.Minister)
			if err != nil {
				return helper.StoreError(c, err)
			}
			if detail != nil {
				return helper.FailedValidation(c, []helper.FieldError{*detail})
			}
			if err := ctrl.mutateAssociation(c, &doc, "Ministers", ministerRefs(ministers), body.ReplaceAssociations); err != nil {
				return helper.StoreError(c, err)
			}
		}

		if len(body.Contributing) > 0 {
			contributing, detail, err := ctrl.resolveMinisters(c, "contributing", body.Contributing)
			if err != nil {
				return helper.StoreError(c, err)
			}
			if detail != nil {
				return helper.FailedValidation(c, []helper.FieldError{*detail})
			}
			if err := ctrl.mutateAssociation(c, &doc, "Contributing", ministerRefs(contributing), body.ReplaceAssociations); err != nil {
				return helper.StoreError(c, err)
			}
		}

		err = ctrl.DB.WithContext(c.UserContext()).
			Preload("Channels").Preload("Tags").Preload("Ministers").Preload("Contributing").
			Where("id = ?", id).First(&doc).Error
		if err != nil {
			return helper.StoreError(c, err)
		}
		ctrl.open(&doc)
		return helper.Success(c, &doc)
	}
}

/* =========================================================
   LIFECYCLE
========================================================= */

func (ctrl *MediaController) Suspend() fiber.Handler {
	return crud.Suspend[model.MediaModel](ctrl.DB, true)
}

// Unsuspend refuses to reactivate media whose first channel has not been
// verified.
func (ctrl *MediaController) Unsuspend() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var doc model.MediaModel
		err = ctrl.DB.WithContext(c.UserContext()).
			// join-table order is undefined; the oldest channel is the primary one
			Preload("Channels", func(db *gorm.DB) *gorm.DB {
				return db.Order("channels.created_at ASC")
			}).
			Where("id = ? AND tenant_id = ? AND user_id = ?", id, helper.TenantID(c), helper.UserID(c)).
			First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		if err != nil {
			return helper.StoreError(c, err)
		}

		if len(doc.Channels) == 0 || !doc.Channels[0].IsVerified {
			return helper.FailedValidation(c, fiber.Map{"err": "Channel Unverified"})
		}

		return crud.Unsuspend[model.MediaModel](ctrl.DB, true)(c)
	}
}

func (ctrl *MediaController) Remove() fiber.Handler {
	return crud.Remove[model.MediaModel](ctrl.DB, true)
}

func (ctrl *MediaController) RemoveTotal() fiber.Handler {
	return crud.RemoveTotal[model.MediaModel](ctrl.DB, true)
}

/* =========================================================
   reference resolution
========================================================= */

func (ctrl *MediaController) open(m *model.MediaModel) {
	m.Open(ctrl.Cipher)
	for i := range m.Tags {
		m.Tags[i].Open(ctrl.Cipher)
	}
	for i := range m.Ministers {
		m.Ministers[i].Open(ctrl.Cipher)
	}
	for i := range m.Contributing {
		m.Contributing[i].Open(ctrl.Cipher)
	}
}

// defaultChannel is the caller's first channel, empty when they own none.
func (ctrl *MediaController) defaultChannel(c *fiber.Ctx) ([]channelModel.ChannelModel, error) {
	var channel channelModel.ChannelModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("tenant_id = ? AND user_id = ?", helper.TenantID(c), helper.UserID(c)).
		Order("created_at ASC").
		First(&channel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []channelModel.ChannelModel{channel}, nil
}

func (ctrl *MediaController) resolveChannels(c *fiber.Ctx, refs helper.FlexStrings) ([]channelModel.ChannelModel, *helper.FieldError, error) {
	ids, detail := parseRefs("mediaChannel", refs)
	if detail != nil || len(ids) == 0 {
		return nil, detail, nil
	}
	var rows []channelModel.ChannelModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	if len(rows) != len(ids) {
		d := helper.InvalidDataError("mediaChannel", "unknown channel")
		return nil, &d, nil
	}
	return rows, nil, nil
}

func (ctrl *MediaController) resolveTags(c *fiber.Ctx, refs helper.FlexStrings) ([]tagModel.MediaTagModel, *helper.FieldError, error) {
	ids, detail := parseRefs("mediaTag", refs)
	if detail != nil || len(ids) == 0 {
		return nil, detail, nil
	}
	var rows []tagModel.MediaTagModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	if len(rows) != len(ids) {
		d := helper.InvalidDataError("mediaTag", "unknown tag")
		return nil, &d, nil
	}
	return rows, nil, nil
}

func (ctrl *MediaController) resolveMinisters(c *fiber.Ctx, field string, refs helper.FlexStrings) ([]ministerModel.MinisterModel, *helper.FieldError, error) {
	ids, detail := parseRefs(field, refs)
	if detail != nil || len(ids) == 0 {
		return nil, detail, nil
	}
	var rows []ministerModel.MinisterModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	if len(rows) != len(ids) {
		d := helper.InvalidDataError(field, "unknown minister")
		return nil, &d, nil
	}
	return rows, nil, nil
}

func (ctrl *MediaController) mutateAssociation(c *fiber.Ctx, doc *model.MediaModel, name string, refs interface{}, replace bool) error {
	assoc := ctrl.DB.WithContext(c.UserContext()).Model(doc).Association(name)
	if replace {
		return assoc.Replace(refs)
	}
	return assoc.Append(refs)
}

func parseRefs(field string, refs helper.FlexStrings) ([]uuid.UUID, *helper.FieldError) {
	if len(refs) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		id, err := uuid.Parse(ref)
		if err != nil {
			d := helper.InvalidDataError(field, ref)
			return nil, &d
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toJSONList(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	raw, _ := json.Marshal(values)
	return raw
}

func mergeJSONList(existing datatypes.JSON, incoming helper.FlexStrings, replace bool) datatypes.JSON {
	if replace || len(existing) == 0 {
		return toJSONList(incoming)
	}
	var current []string
	if err := json.Unmarshal(existing, &current); err != nil {
		return toJSONList(incoming)
	}
	return toJSONList(append(current, incoming...))
}

func channelRefs(rows []channelModel.ChannelModel) []*channelModel.ChannelModel {
	out := make([]*channelModel.ChannelModel, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}

func tagRefs(rows []tagModel.MediaTagModel) []*tagModel.MediaTagModel {
	out := make([]*tagModel.MediaTagModel, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}

func ministerRefs(rows []ministerModel.MinisterModel) []*ministerModel.MinisterModel {
	out := make([]*ministerModel.MinisterModel, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
