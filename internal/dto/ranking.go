package dto

type RankingEntryResponseDTO struct {
	Rank      int64 `json:"rank" example:"1"`
	StudentID int   `json:"student_id" example:"7"`
	Level     int   `json:"level" example:"12"`
	Exp       int   `json:"exp" example:"40"`
}
