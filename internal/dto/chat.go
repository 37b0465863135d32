package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"userId,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
