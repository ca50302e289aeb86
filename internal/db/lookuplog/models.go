package lookuplog

import (
	"time"
)

type LookupLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	City        string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Country     string    `json:"country"`
	Units       string    `json:"units"`
	Temperature float64   `json:"temperature"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (LookupLog) TableName() string {
	return "weather_lookups"
}
