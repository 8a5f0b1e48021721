package models

import "time"

// AuditLog records registration, approval and deletion events
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ActorType string    `gorm:"column:actor_type;size:50" json:"actor_type"`
	ActorID   *string   `gorm:"column:actor_id;size:36;index" json:"actor_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
