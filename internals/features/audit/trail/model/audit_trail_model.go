package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ActionCreated = "created"

// AuditTrailModel is the append-only creation log. Rows are written in the
// same transaction as the record they describe; a failed write leaves no
// trail entry.
type AuditTrailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Entity    string    `gorm:"type:varchar(50);not null;index" json:"entity"`
	RecordID  uuid.UUID `gorm:"type:uuid;not null" json:"recordId"`
	UserID    string    `gorm:"type:varchar(100);not null" json:"userId"`
	TenantID  string    `gorm:"type:varchar(100)" json:"tenantId"`
	Action    string    `gorm:"type:varchar(20);not null" json:"action"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AuditTrailModel) TableName() string {
	return "audit_trails"
}

func (m *AuditTrailModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Record appends a creation entry using the caller's transaction handle.
func Record(tx *gorm.DB, entity string, recordID uuid.UUID, userID, tenantID string) error {
	entry := AuditTrailModel{
		Entity:   entity,
		RecordID: recordID,
		UserID:   userID,
		TenantID: tenantID,
		Action:   ActionCreated,
	}
	return tx.Create(&entry).Error
}
