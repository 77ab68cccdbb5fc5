package dto

type AccountResponseDTO struct {
	Level         int            `json:"level" example:"3"`
	Exp           int            `json:"exp" example:"40"`
	ExpToNext     int            `json:"exp_to_next" example:"120"`
	Points        int            `json:"points" example:"250"`
	Counters      map[string]int `json:"counters"`
	ActiveTitleID *string        `json:"active_title_id,omitempty"`
}
