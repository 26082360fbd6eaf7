package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/fieldcipher"
)

// MediaTagModel stores the tag name only as a lookup hash plus an encrypted
// original; the plaintext never touches the store.
type MediaTagModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NameHash    string     `gorm:"type:varchar(64);not null;uniqueIndex" json:"nameHash"`
	SecretName  string     `gorm:"type:text" json:"-"`
	SecretImage string     `gorm:"type:text" json:"-"`
	PrettyName  *string    `gorm:"type:varchar(150);uniqueIndex" json:"prettyName,omitempty"`
	CoreType    string     `gorm:"type:varchar(20)" json:"coreType"`
	Featured    bool       `json:"featured"`
	FeaturedAt  *time.Time `json:"featuredAt,omitempty"`

	// decrypted views, populated via Open
	Name  string `gorm:"-" json:"name,omitempty"`
	Image string `gorm:"-" json:"image,omitempty"`

	TenantID      string    `gorm:"type:varchar(100);index" json:"tenantId"`
	UserID        string    `gorm:"type:varchar(100);not null" json:"userId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
	IsActive      bool      `json:"isActive"`
}

func (MediaTagModel) TableName() string {
	return "media_tags"
}

func (m *MediaTagModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *MediaTagModel) RecordID() uuid.UUID {
	return m.ID
}

// Open decrypts the secret fields into their response views. Decrypt
// failures leave the views empty rather than failing the read.
func (m *MediaTagModel) Open(cipher *fieldcipher.Cipher) {
	m.Name, _ = cipher.DecryptField(m.SecretName)
	m.Image, _ = cipher.DecryptField(m.SecretImage)
}
