package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID             uint           `gorm:"primaryKey"`
	Code           string         `gorm:"column:code;unique"`
	Name           string         `gorm:"column:name"`
	PrimaryColor   string         `gorm:"column:primary_color"`
	SecondaryColor string         `gorm:"column:secondary_color"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "m_airlines"
}

// GetByCode finds an airline by code. Rows without a palette get the default colors.
func (r *GormAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	var row Airlines
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAirlineNotFound
		}
		return nil, result.Error
	}

	colors := entity.DefaultAirlineColors
	if row.PrimaryColor != "" {
		colors.Primary = row.PrimaryColor
	}
	if row.SecondaryColor != "" {
		colors.Secondary = row.SecondaryColor
	}

	return &entity.Airline{
		Code:   row.Code,
		Name:   row.Name,
		Colors: colors,
	}, nil
}
