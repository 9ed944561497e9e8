package repository

import (
	"github.com/Orbe-ERP/pos-backend/entity"
	"gorm.io/gorm"
)

type PaymentConfigRepository struct {
	DB *gorm.DB
}

func NewPaymentConfigRepository(db *gorm.DB) *PaymentConfigRepository {
	return &PaymentConfigRepository{DB: db}
}

func (r *PaymentConfigRepository) Find(restID uint, method, brand string) (*entity.PaymentConfig, error) {
	var cfg entity.PaymentConfig
	err := r.DB.
		Where("restaurant_id = ? AND method = ? AND brand = ?", restID, method, brand).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *PaymentConfigRepository) List(restID uint) ([]entity.PaymentConfig, error) {
	var cfgs []entity.PaymentConfig
	err := r.DB.Where("restaurant_id = ?", restID).Order("method, brand").Find(&cfgs).Error
	return cfgs, err
}

func (r *PaymentConfigRepository) Save(cfg *entity.PaymentConfig) error {
	return r.DB.Save(cfg).Error
}

// DeleteByKey removes the config for the exact key; deleting nothing is fine.
func (r *PaymentConfigRepository) DeleteByKey(restID uint, method, brand string) error {
	return r.DB.
		Where("restaurant_id = ? AND method = ? AND brand = ?", restID, method, brand).
		Delete(&entity.PaymentConfig{}).Error
}
