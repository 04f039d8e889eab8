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

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	City      string         `gorm:"column:city"`
	Country   string         `gorm:"column:country"`
	Lat       float64        `gorm:"column:lat"`
	Lng       float64        `gorm:"column:lng"`
	TzName    string         `gorm:"column:tzname"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// GetByCode finds an airport by IATA code
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var row Airports
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAirportNotFound
		}
		return nil, result.Error
	}

	return &entity.Airport{
		Code:     row.Code,
		Name:     row.Name,
		City:     row.City,
		Country:  row.Country,
		Lat:      row.Lat,
		Lng:      row.Lng,
		Timezone: row.TzName,
	}, nil
}
