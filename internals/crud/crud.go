// Package crud is the cross-cutting wrapper layer: higher-order
// fiber.Handler builders that give every entity identical audit, listing,
// lifecycle and failure semantics. Entity controllers declare what shape of
// query or document they need; the wrappers own execution, trail recording
// and response termination.
package crud

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	trailModel "gospelmedia_backend/internals/features/audit/trail/model"
	helper "gospelmedia_backend/internals/helpers"
)

// Record is implemented by every persisted model; the create wrapper needs
// the generated id for the trail entry.
type Record interface {
	RecordID() uuid.UUID
}

// ListSpec is the query-shaping descriptor a list handler returns.
type ListSpec struct {
	// TenantScoped merges tenant+owner scoping from the caller's claims.
	TenantScoped bool
	// Sort is an ORDER BY clause; defaults to newest first.
	Sort string
	// Filter holds static column equality filters, e.g. {"is_active": true}.
	Filter map[string]interface{}
	// Preloads expands referenced documents by association name.
	Preloads []string
}

// Create persists the document returned by build and appends the audit
// trail entry in the same transaction: a failed write leaves no trail.
func Create[T any, PT interface {
	*T
	Record
}](db *gorm.DB, entity string, build func(c *fiber.Ctx) (PT, []helper.FieldError, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, details, err := build(c)
		if err != nil {
			return helper.StoreError(c, err)
		}
		if len(details) > 0 {
			return helper.FailedValidation(c, details)
		}

		err = db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(doc).Error; err != nil {
				return err
			}
			return trailModel.Record(tx, entity, doc.RecordID(), helper.UserID(c), helper.TenantID(c))
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.FailedValidation(c, []helper.FieldError{duplicateDetail(entity)})
			}
			return helper.StoreError(c, err)
		}
		return helper.Success(c, doc)
	}
}

// List executes the descriptor and responds with the matching rows; no
// matches is an empty list, never an error. Optional each funcs run per row
// before emission (e.g. decrypting secret fields).
func List[T any](db *gorm.DB, spec func(c *fiber.Ctx) ListSpec, each ...func(*T)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := scopedQuery(db, c, spec(c))
		pg := helper.ResolvePaging(c, 50, 200)

		var rows []T
		if err := q.Offset(pg.Offset).Limit(pg.Limit).Find(&rows).Error; err != nil {
			return helper.StoreError(c, err)
		}
		if rows == nil {
			rows = []T{}
		}
		for i := range rows {
			for _, fn := range each {
				fn(&rows[i])
			}
		}
		return helper.Success(c, rows)
	}
}

// ListOne fetches by the :id path param with the same descriptor shape.
func ListOne[T any](db *gorm.DB, spec func(c *fiber.Ctx) ListSpec, each ...func(*T)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		var row T
		err = scopedQuery(db, c, spec(c)).Where("id = ?", id).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c)
		}
		if err != nil {
			return helper.StoreError(c, err)
		}
		for _, fn := range each {
			fn(&row)
		}
		return helper.Success(c, &row)
	}
}

// Suspend flips the record inactive; reversible via Unsuspend.
func Suspend[T any](db *gorm.DB, scoped bool) fiber.Handler {
	return setFlags[T](db, scoped, map[string]interface{}{"is_active": false})
}

func Unsuspend[T any](db *gorm.DB, scoped bool) fiber.Handler {
	return setFlags[T](db, scoped, map[string]interface{}{"is_active": true})
}

func Feature[T any](db *gorm.DB, scoped bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return setFlags[T](db, scoped, map[string]interface{}{
			"featured":    true,
			"featured_at": time.Now(),
		})(c)
	}
}

func Unfeature[T any](db *gorm.DB, scoped bool) fiber.Handler {
	return setFlags[T](db, scoped, map[string]interface{}{"featured": false})
}

// Remove is the reversible soft delete; the record stays listable via the
// "all" variants.
func Remove[T any](db *gorm.DB, scoped bool) fiber.Handler {
	return setFlags[T](db, scoped, map[string]interface{}{"is_active": false})
}

// RemoveTotal permanently erases the document.
func RemoveTotal[T any](db *gorm.DB, scoped bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		q := db.WithContext(c.UserContext()).Where("id = ?", id)
		if scoped {
			q = q.Where("tenant_id = ? AND user_id = ?", helper.TenantID(c), helper.UserID(c))
		}
		res := q.Delete(new(T))
		if res.Error != nil {
			return helper.StoreError(c, res.Error)
		}
		if res.RowsAffected == 0 {
			return helper.NotFound(c)
		}
		return helper.Success(c, nil)
	}
}

func setFlags[T any](db *gorm.DB, scoped bool, cols map[string]interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.NotFound(c)
		}

		q := db.WithContext(c.UserContext()).Model(new(T)).Where("id = ?", id)
		if scoped {
			q = q.Where("tenant_id = ? AND user_id = ?", helper.TenantID(c), helper.UserID(c))
		}
		res := q.Updates(cols)
		if res.Error != nil {
			return helper.StoreError(c, res.Error)
		}
		if res.RowsAffected == 0 {
			return helper.NotFound(c)
		}

		var doc T
		if err := db.WithContext(c.UserContext()).Where("id = ?", id).First(&doc).Error; err != nil {
			return helper.StoreError(c, err)
		}
		return helper.Success(c, &doc)
	}
}

func scopedQuery(db *gorm.DB, c *fiber.Ctx, s ListSpec) *gorm.DB {
	q := db.WithContext(c.UserContext())
	if s.TenantScoped {
		q = q.Where("tenant_id = ? AND user_id = ?", helper.TenantID(c), helper.UserID(c))
	}
	for col, v := range s.Filter {
		q = q.Where(col+" = ?", v)
	}
	for _, p := range s.Preloads {
		q = q.Preload(p)
	}
	sort := s.Sort
	if sort == "" {
		sort = "created_at DESC"
	}
	return q.Order(sort)
}

func duplicateDetail(entity string) helper.FieldError {
	return helper.FieldError{
		Property:    entity,
		Constraints: map[string]string{"duplicate": "Duplicate " + entity},
	}
}
