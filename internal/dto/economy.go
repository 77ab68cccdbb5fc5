package dto

type SpendRequestDTO struct {
	ItemID string `json:"item_id" example:"snack-pack"`
}

type SpendResponseDTO struct {
	EntryID        string `json:"entry_id"`
	Points         int    `json:"points" example:"50"`
	RemainingStock int    `json:"remaining_stock" example:"4"`
}

type RewardItemResponseDTO struct {
	ID    string `json:"id" example:"snack-pack"`
	Name  string `json:"name" example:"Snack Pack"`
	Cost  int    `json:"cost" example:"200"`
	Stock int    `json:"stock" example:"4"`
	Limit int    `json:"limit" example:"1"`
}

type DrawResponseDTO struct {
	PrizeID string `json:"prize_id" example:"gold-sticker"`
	Name    string `json:"name" example:"Gold Sticker"`
	Rarity  string `json:"rarity" example:"rare"`
	Points  int    `json:"points" example:"40"`
}

type DrawRecordResponseDTO struct {
	PrizeID string `json:"prize_id"`
	Name    string `json:"name"`
	Rarity  string `json:"rarity"`
	DrawnAt string `json:"drawn_at" example:"2026-02-01T10:00:00Z"`
}
