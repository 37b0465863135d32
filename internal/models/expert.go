package models

import (
	"time"

	"github.com/google/uuid"
)

type Expert struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	Bio             string    `db:"bio"`
	Specialization  []string  `db:"specialization"`
	ExperienceYears int       `db:"experience_years"`
	HourlyRateINR   float64   `db:"hourly_rate_inr"`
	IsActive        bool      `db:"is_active"`
	IsVerified      bool      `db:"is_verified"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
