package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
)

// ChannelSubscriptionModel holds at most one row per (user, channel,
// tenant); subscribe/notify upsert into it, never duplicate it.
type ChannelSubscriptionModel struct {
	ID            uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	ChannelID     uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:uq_subscription_user_channel_tenant,priority:2" json:"channelId"`
	Channel       *channelModel.ChannelModel `gorm:"foreignKey:ChannelID" json:"mediaChannel,omitempty"`
	Subscribed    bool                       `json:"subscribed"`
	NotifyMe      bool                       `json:"notifyMe"`
	TenantID      string                     `gorm:"type:varchar(100);uniqueIndex:uq_subscription_user_channel_tenant,priority:3" json:"tenantId"`
	UserID        string                     `gorm:"type:varchar(100);not null;uniqueIndex:uq_subscription_user_channel_tenant,priority:1" json:"userId"`
	CreatedAt     time.Time                  `gorm:"autoCreateTime" json:"createdAt"`
	LastUpdatedAt time.Time                  `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
	IsActive      bool                       `json:"isActive"`
}

func (ChannelSubscriptionModel) TableName() string {
	return "channel_subscriptions"
}

func (m *ChannelSubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *ChannelSubscriptionModel) RecordID() uuid.UUID {
	return m.ID
}
