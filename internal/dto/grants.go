package dto

// GrantRequestDTO is a single progression event: which activity happened and
// what it is worth.
type GrantRequestDTO struct {
	Kind     string         `json:"kind" example:"homework"`
	Exp      int            `json:"exp" example:"20"`
	Points   int            `json:"points" example:"10"`
	Counters map[string]int `json:"counters,omitempty"`
}

type GrantResponseDTO struct {
	EntryID  string `json:"entry_id" example:"3b9f1f3e-0a64-4a6e-9c3a-7f1a2b3c4d5e"`
	Level    int    `json:"level" example:"2"`
	Exp      int    `json:"exp" example:"15"`
	LevelUps int    `json:"level_ups" example:"1"`
	Points   int    `json:"points_applied" example:"10"`
}

type RevokeResponseDTO struct {
	EntryID string `json:"entry_id" example:"6f0c2d1a-4e5b-4c7d-8e9f-0a1b2c3d4e5f"`
	Level   int    `json:"level" example:"2"`
	Points  int    `json:"points_applied" example:"-10"`
}

type CloseSessionRequestDTO struct {
	Minutes int  `json:"minutes" example:"47"`
	Forced  bool `json:"forced" example:"false"`
}

type CloseSessionResponseDTO struct {
	EntryID   string `json:"entry_id,omitempty"`
	GainedExp int    `json:"gained_exp" example:"20"`
	Level     int    `json:"level" example:"3"`
}

type LedgerEntryResponseDTO struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind" example:"homework"`
	Exp        int            `json:"exp" example:"20"`
	Points     int            `json:"points" example:"10"`
	Counters   map[string]int `json:"counters,omitempty"`
	Reversed   bool           `json:"reversed" example:"false"`
	ReversalOf *string        `json:"reversal_of,omitempty"`
	CreatedAt  string         `json:"created_at" example:"2026-02-01T10:00:00Z"`
}
