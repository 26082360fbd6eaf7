package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChannelModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	BannerImageLink string    `gorm:"type:text" json:"bannerImageLink"`
	ImageLink       string    `gorm:"type:text" json:"imageLink"`
	IsVerified      bool      `json:"isVerified"`
	Subscribers     int64     `json:"subscribers"`
	TenantID        string    `gorm:"type:varchar(100);index" json:"tenantId"`
	UserID          string    `gorm:"type:varchar(100);not null;index" json:"userId"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	LastUpdatedAt   time.Time `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
	IsActive        bool      `json:"isActive"`
}

func (ChannelModel) TableName() string {
	return "channels"
}

func (m *ChannelModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *ChannelModel) RecordID() uuid.UUID {
	return m.ID
}
