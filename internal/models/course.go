package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID               uuid.UUID `db:"id"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	Category         string    `db:"category"`
	PriceINR         float64   `db:"price_inr"`
	InstructorName   string    `db:"instructor_name"`
	LearningOutcomes []string  `db:"learning_outcomes"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
