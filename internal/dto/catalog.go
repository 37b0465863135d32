package dto

type CourseResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	PriceINR         float64  `json:"price_inr"`
	InstructorName   string   `json:"instructor_name"`
	LearningOutcomes []string `json:"learning_outcomes,omitempty"`
}

type ExpertResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	Specialization  []string `json:"specialization"`
	ExperienceYears int      `json:"experience_years"`
	HourlyRateINR   float64  `json:"hourly_rate_inr"`
}

type VideoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	YouTubeID   string `json:"youtube_id,omitempty"`
	PublishedAt string `json:"published_at"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	ExpertID    string  `json:"expert_id"`
	ScheduledAt string  `json:"scheduled_at"`
	AmountINR   float64 `json:"amount_inr"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
}
