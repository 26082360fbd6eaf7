// Package testutil bootstraps an in-memory store and app instance for the
// package tests. Only _test files import it.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gospelmedia_backend/internals/configs"
	trailModel "gospelmedia_backend/internals/features/audit/trail/model"
	linkModel "gospelmedia_backend/internals/features/channels/channel_links/model"
	subscriptionModel "gospelmedia_backend/internals/features/channels/channel_subscriptions/model"
	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	mediaModel "gospelmedia_backend/internals/features/media/media/model"
	tagModel "gospelmedia_backend/internals/features/media/media_tags/model"
	ministerModel "gospelmedia_backend/internals/features/ministers/ministers/model"
	"gospelmedia_backend/internals/fieldcipher"
	routes "gospelmedia_backend/internals/route"
)

const (
	JWTSecret = "test-secret"
	TenantID  = "tenant-1"
	UserID    = "user-1"
)

func init() {
	configs.JWTSecret = JWTSecret
}

// Cipher is the fixed key pair every test app uses.
func Cipher() *fieldcipher.Cipher {
	return fieldcipher.New("test-encryption-key", "test-signing-key")
}

// OpenDB returns a fresh in-memory store with the full schema.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("pool handle: %v", err)
	}
	// the shared in-memory db vanishes when its last connection closes
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&channelModel.ChannelModel{},
		&subscriptionModel.ChannelSubscriptionModel{},
		&linkModel.ChannelLinkModel{},
		&tagModel.MediaTagModel{},
		&ministerModel.MinisterModel{},
		&mediaModel.MediaModel{},
		&trailModel.AuditTrailModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewApp wires the full route surface onto a fresh app.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	routes.SetupRoutes(app, db, Cipher())
	return app
}

// Token mints a bearer token for the default test identity.
func Token(userType string) string {
	return TokenFor(UserID, TenantID, userType)
}

func TokenFor(userID, tenantID, userType string) string {
	claims := jwt.MapClaims{
		"user_id":   userID,
		"tenant_id": tenantID,
		"user_type": userType,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(JWTSecret))
	return signed
}

// Envelope is the decoded response body.
type Envelope struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload"`
}

// Do performs a request; a non-empty token rides the Authorization header.
func Do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env Envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
	}
	return resp.StatusCode, env
}

// Decode unmarshals the payload into out.
func Decode(t *testing.T, env Envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Payload, out); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
}
