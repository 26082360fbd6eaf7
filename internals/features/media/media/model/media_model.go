package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	tagModel "gospelmedia_backend/internals/features/media/media_tags/model"
	ministerModel "gospelmedia_backend/internals/features/ministers/ministers/model"
	"gospelmedia_backend/internals/fieldcipher"
)

// MediaModel is a sermon/music item. The source link is encrypted at rest;
// engagement counters stay opaque strings as delivered by the ingest side.
type MediaModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(200)" json:"name"`
	PrettyName       *string   `gorm:"type:varchar(200);uniqueIndex" json:"prettyName,omitempty"`
	SecretSourceLink string    `gorm:"type:text" json:"-"`
	Note             string    `gorm:"type:text" json:"note"`
	Description      string    `gorm:"type:text" json:"description"`
	MediaType        string    `gorm:"type:varchar(50)" json:"mediaType"`
	MediaLength      string    `gorm:"type:varchar(20)" json:"mediaLength"`

	ThumbnailLink datatypes.JSON `json:"thumbnailLink,omitempty"`
	MediaCategory datatypes.JSON `json:"mediaCategory,omitempty"`

	Channels     []channelModel.ChannelModel   `gorm:"many2many:media_channels" json:"mediaChannel"`
	Tags         []tagModel.MediaTagModel      `gorm:"many2many:media_media_tags" json:"mediaTag"`
	Ministers    []ministerModel.MinisterModel `gorm:"many2many:media_ministers" json:"minister"`
	Contributing []ministerModel.MinisterModel `gorm:"many2many:media_contributors" json:"contributing"`

	Views               string     `gorm:"type:varchar(20)" json:"views"`
	Likes               string     `gorm:"type:varchar(20)" json:"likes"`
	Dislikes            string     `gorm:"type:varchar(20)" json:"dislikes"`
	Trending            string     `gorm:"type:varchar(20)" json:"trending"`
	TrendingAt          *time.Time `json:"trendingAt,omitempty"`
	ScheduleAt          *time.Time `json:"scheduleAt,omitempty"`
	SubscribersNotified *time.Time `json:"subscribersNotified,omitempty"`

	// decrypted view, populated via Open
	SourceLink string `gorm:"-" json:"sourceLink,omitempty"`

	TenantID      string    `gorm:"type:varchar(100);index" json:"tenantId"`
	UserID        string    `gorm:"type:varchar(100);not null;index" json:"userId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
	IsActive      bool      `json:"isActive"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *MediaModel) RecordID() uuid.UUID {
	return m.ID
}

func (m *MediaModel) Open(cipher *fieldcipher.Cipher) {
	m.SourceLink, _ = cipher.DecryptField(m.SecretSourceLink)
}
