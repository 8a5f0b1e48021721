package repository

import (
	"errors"
	"time"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"

	"gorm.io/gorm"
)

// TransferFilters are the optional query parameters of the list endpoint
type TransferFilters struct {
	Status         string
	FromHospitalID string
	ToHospitalID   string
}

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepo(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

// Create persists a new transfer request
func (r *TransferRepository) Create(transfer *models.EquipmentTransfer) error {
	return r.db.Create(transfer).Error
}

// FindByID retrieves a transfer with both hospitals preloaded
func (r *TransferRepository) FindByID(id string) (*models.EquipmentTransfer, error) {
	var transfer models.EquipmentTransfer
	err := r.db.Preload("FromHospital").Preload("ToHospital").
		Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("transfer %s not found", id)
		}
		return nil, err
	}
	return &transfer, nil
}

// Find retrieves transfers matching the filters, newest first
func (r *TransferRepository) Find(filters TransferFilters) ([]models.EquipmentTransfer, error) {
	query := r.db.Preload("FromHospital").Preload("ToHospital").
		Order("created_at DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.FromHospitalID != "" {
		query = query.Where("from_hospital_id = ?", filters.FromHospitalID)
	}
	if filters.ToHospitalID != "" {
		query = query.Where("to_hospital_id = ?", filters.ToHospitalID)
	}

	var transfers []models.EquipmentTransfer
	err := query.Find(&transfers).Error
	return transfers, err
}

// Update persists field changes on an existing transfer
func (r *TransferRepository) Update(transfer *models.EquipmentTransfer) error {
	return r.db.Save(transfer).Error
}

// Delete removes a transfer by id. Inventory is never reversed here.
func (r *TransferRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.EquipmentTransfer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("transfer %s not found", id)
	}
	return nil
}

// Approve persists an approval atomically: a guarded decrement on the source
// inventory row, an upsert on the destination row, then the transfer record
// itself. The decrement only applies while the row still covers the
// quantity, so concurrent approvals cannot drive the free count negative;
// any failure rolls the whole adjustment back.
func (r *TransferRepository) Approve(transfer *models.EquipmentTransfer, source *models.HospitalEquipment, destination *models.HospitalEquipment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.HospitalEquipment{}).
			Where("id = ? AND free >= ?", source.ID, transfer.Quantity).
			UpdateColumns(map[string]interface{}{
				"free":  gorm.Expr("free - ?", transfer.Quantity),
				"total": gorm.Expr("total - ?", transfer.Quantity),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.InsufficientInventory(
				"hospital %s no longer has %d free %s", transfer.FromHospitalID, transfer.Quantity, transfer.EquipmentName)
		}

		if destination.ID != "" {
			res = tx.Model(&models.HospitalEquipment{}).
				Where("id = ?", destination.ID).
				UpdateColumns(map[string]interface{}{
					"free":  gorm.Expr("free + ?", transfer.Quantity),
					"total": gorm.Expr("total + ?", transfer.Quantity),
				})
			if res.Error != nil {
				return res.Error
			}
		} else {
			if err := tx.Create(destination).Error; err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		transfer.Status = models.TransferApproved
		transfer.TransferDate = &now
		return tx.Model(&models.EquipmentTransfer{}).
			Where("id = ?", transfer.ID).
			Updates(map[string]interface{}{
				"status":        models.TransferApproved,
				"approved_by":   transfer.ApprovedBy,
				"remarks":       transfer.Remarks,
				"transfer_date": now,
			}).Error
	})
}

// CountActiveByHospital counts non-terminal transfers referencing the
// hospital on either side. Used by the delete-referential-integrity checks.
func (r *TransferRepository) CountActiveByHospital(hospitalID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.EquipmentTransfer{}).
		Where("from_hospital_id = ? OR to_hospital_id = ?", hospitalID, hospitalID).
		Where("status IN ?", []models.TransferStatus{
			models.TransferRequested, models.TransferApproved, models.TransferInTransit,
		}).
		Count(&count).Error
	return count, err
}
