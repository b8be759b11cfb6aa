package dto

// ErrorResponseDTO 는 모든 4xx/5xx 응답 본문. message 는 handlers 의 고정 문구뿐이다.
type ErrorResponseDTO struct {
	Message string `json:"message" example:"Post not found"`
}

// HealthResponseDTO is the /health body.
type HealthResponseDTO struct {
	Status  string `json:"status" example:"ok"`
	Content string `json:"content" example:"up"`
}
