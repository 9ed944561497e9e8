package repository

import (
	"github.com/Orbe-ERP/pos-backend/entity"
	"gorm.io/gorm"
)

type SettlementRepository struct {
	DB *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{DB: db}
}

func (r *SettlementRepository) Create(tx *gorm.DB, s *entity.Settlement) error {
	return tx.Create(s).Error
}

func (r *SettlementRepository) ByIdentifier(identifier string) (*entity.Settlement, error) {
	var s entity.Settlement
	err := r.DB.
		Preload("Bills").
		Preload("Bills.Items").
		Where("identifier = ?", identifier).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// LatestForTable returns the most recent settlement of a table. Backs the
// idempotent retry of conclude.
func (r *SettlementRepository) LatestForTable(tableID uint) (*entity.Settlement, error) {
	var s entity.Settlement
	err := r.DB.
		Preload("Bills").
		Preload("Bills.Items").
		Where("table_id = ?", tableID).
		Order("id DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
