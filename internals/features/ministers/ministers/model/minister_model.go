package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/fieldcipher"
)

type MinisterModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NameHash    string     `gorm:"type:varchar(64);not null;uniqueIndex" json:"nameHash"`
	SecretName  string     `gorm:"type:text" json:"-"`
	SecretImage string     `gorm:"type:text" json:"-"`
	PrettyName  *string    `gorm:"type:varchar(150);uniqueIndex" json:"prettyName,omitempty"`
	Ministry    string     `gorm:"type:varchar(150)" json:"ministry"`
	CoreType    string     `gorm:"type:varchar(20)" json:"coreType"`
	Office      string     `gorm:"type:varchar(20)" json:"office"`
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

func (MinisterModel) TableName() string {
	return "ministers"
}

func (m *MinisterModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *MinisterModel) RecordID() uuid.UUID {
	return m.ID
}

func (m *MinisterModel) Open(cipher *fieldcipher.Cipher) {
	m.Name, _ = cipher.DecryptField(m.SecretName)
	m.Image, _ = cipher.DecryptField(m.SecretImage)
}
