package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
)

// ChannelLinkModel is an arbitrary key/value pair (social links etc.)
// attached to one or more channels.
type ChannelLinkModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	LinkKey       string                      `gorm:"type:varchar(100)" json:"linkKey"`
	LinkValue     string                      `gorm:"type:text" json:"linkValue"`
	Channels      []channelModel.ChannelModel `gorm:"many2many:channel_link_channels" json:"mediaChannel"`
	TenantID      string                      `gorm:"type:varchar(100);index" json:"tenantId"`
	UserID        string                      `gorm:"type:varchar(100);not null;index" json:"userId"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	LastUpdatedAt time.Time                   `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
	IsActive      bool                        `json:"isActive"`
}

func (ChannelLinkModel) TableName() string {
	return "channel_links"
}

func (m *ChannelLinkModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *ChannelLinkModel) RecordID() uuid.UUID {
	return m.ID
}
