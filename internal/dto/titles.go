package dto

type EvaluateTitlesResponseDTO struct {
	Granted []string `json:"granted"`
}

type TitleResponseDTO struct {
	ID          string `json:"id" example:"lv10"`
	Name        string `json:"name" example:"Veteran"`
	Description string `json:"description"`
	GrantedAt   string `json:"granted_at" example:"2026-02-01T10:00:00Z"`
}

type SetActiveTitleRequestDTO struct {
	TitleID *string `json:"title_id" example:"lv10"`
}
