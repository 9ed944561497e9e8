package services

import (
	"errors"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/repository"
	"gorm.io/gorm"
)

type PaymentConfigService struct {
	Repo *repository.PaymentConfigRepository
}

func NewPaymentConfigService(repo *repository.PaymentConfigRepository) *PaymentConfigService {
	return &PaymentConfigService{Repo: repo}
}

// Fee is the resolved fee for one payment method/brand.
type Fee struct {
	FeePercent float64 `json:"feePercent"`
	FeeFixed   int64   `json:"feeFixed"`
}

// Upsert replaces the config for the exact (restaurant, method, brand) key.
func (s *PaymentConfigService) Upsert(restID uint, method, brand string, feePercent float64, feeFixed int64) (*entity.PaymentConfig, error) {
	if !entity.KnownPaymentMethod(method) {
		return nil, validationf("unknown payment method %q", method)
	}
	if brand != "" && !entity.CardMethod(method) {
		return nil, validationf("brand only applies to card methods")
	}
	if feePercent < 0 || feePercent > 100 {
		return nil, validationf("feePercent out of range")
	}
	if feeFixed < 0 {
		return nil, validationf("feeFixed must not be negative")
	}

	cfg, err := s.Repo.Find(restID, method, brand)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cfg = &entity.PaymentConfig{RestaurantID: restID, Method: method, Brand: brand}
	}
	cfg.FeePercent = feePercent
	cfg.FeeFixed = feeFixed
	if err := s.Repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve returns the fee for a method/brand. Missing configuration is a
// zero-fee result, never an error — checkout must not block on it. Exact
// brand match wins, then a brandless config for the method.
func (s *PaymentConfigService) Resolve(restID uint, method, brand string) (Fee, error) {
	if method == "" {
		return Fee{}, nil
	}
	if brand != "" {
		cfg, err := s.Repo.Find(restID, method, brand)
		if err == nil {
			return Fee{FeePercent: cfg.FeePercent, FeeFixed: cfg.FeeFixed}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Fee{}, err
		}
	}
	cfg, err := s.Repo.Find(restID, method, "")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Fee{}, nil
		}
		return Fee{}, err
	}
	return Fee{FeePercent: cfg.FeePercent, FeeFixed: cfg.FeeFixed}, nil
}

// Delete is idempotent: removing an absent config is a no-op.
func (s *PaymentConfigService) Delete(restID uint, method, brand string) error {
	return s.Repo.DeleteByKey(restID, method, brand)
}

func (s *PaymentConfigService) List(restID uint) ([]entity.PaymentConfig, error) {
	return s.Repo.List(restID)
}
