package repository

import (
	"healthcare-coordination-server/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(actorType string, actorID *string, action string, details string) error {
	log := &models.AuditLog{
		ActorType: actorType,
		ActorID:   actorID,
		Action:    action,
		Details:   details,
	}
	return r.db.Create(log).Error
}
