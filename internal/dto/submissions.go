package dto

type SubmitScoreRequestDTO struct {
	Subject string `json:"subject" example:"math"`
	Score   int    `json:"score" example:"85"`
}

type SubmissionResponseDTO struct {
	ID         int    `json:"id" example:"1"`
	Subject    string `json:"subject" example:"math"`
	Score      int    `json:"score" example:"85"`
	Status     string `json:"status" example:"PROCESSED"`
	UploadedAt string `json:"uploaded_at" example:"2026-02-01T10:00:00Z"`
}
