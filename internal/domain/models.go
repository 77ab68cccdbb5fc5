package domain

import (
	"time"

	"github.com/google/uuid"
)

// Counter names tracked on a student account. Event recorders may only
// increment counters from this set.
const (
	CounterHomework      = "homeworkCount"
	CounterWordTest      = "wordTestCount"
	CounterWordTestScore = "totalWordTestScore"
	CounterSelfStudy     = "selfStudyCount"
	CounterStudyMinutes  = "totalStudyMinutes"
	CounterRewards       = "rewardsCount"
)

const (
	// UnlimitedStock marks an item that never runs out.
	UnlimitedStock = -1
	// MaxLevel is the leveling cap.
	MaxLevel = 999
)

type Student struct {
	ID            int            `db:"id"`
	Login         string         `db:"login"`
	PasswordHash  string         `db:"password_hash"`
	Level         int            `db:"level"`
	Experience    int            `db:"experience"`
	Points        int            `db:"points"`
	Counters      map[string]int `db:"counters"`
	ActiveTitleID *string        `db:"active_title_id"`
	YellowCards   int            `db:"yellow_card_count"`
	BannedUntil   *time.Time     `db:"banned_until"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Counter returns the named counter, zero when never incremented.
func (s *Student) Counter(name string) int {
	if s.Counters == nil {
		return 0
	}
	return s.Counters[name]
}

// ExpNeeded is the experience required to advance from the given level.
func ExpNeeded(level int) int {
	return 100 + (level-1)*10
}

// Ledger entry kinds.
const (
	KindHomework   = "homework"
	KindWordTest   = "wordtest"
	KindSelfStudy  = "selfstudy"
	KindScore      = "score"
	KindSpend      = "spend"
	KindDrawCharge = "draw-charge"
	KindUndoPrefix = "undo-"
)

type LedgerEntry struct {
	ID            uuid.UUID      `db:"id"`
	StudentID     int            `db:"student_id"`
	Kind          string         `db:"kind"`
	ExpDelta      int            `db:"exp_delta"`
	PointsDelta   int            `db:"points_delta"`
	CounterDeltas map[string]int `db:"counter_deltas"`
	ItemID        *string        `db:"item_id"`
	Reversed      bool           `db:"reversed"`
	ReversalOf    *uuid.UUID     `db:"reversal_of"`
	CreatedAt     time.Time      `db:"created_at"`
}

type LevelHistory struct {
	ID        int       `db:"id"`
	StudentID int       `db:"student_id"`
	OldLevel  int       `db:"old_level"`
	NewLevel  int       `db:"new_level"`
	GainedExp int       `db:"gained_exp"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

type RewardItem struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Cost            int    `db:"cost"`
	Stock           int    `db:"stock"`
	PerStudentLimit int    `db:"per_student_limit"`
	Category        string `db:"category"`
}

type DrawItem struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Weight int    `db:"weight"`
	Stock  int    `db:"stock"`
	Rarity string `db:"rarity"`
}

type DrawRecord struct {
	ID        uuid.UUID `db:"id"`
	StudentID int       `db:"student_id"`
	PrizeID   string    `db:"prize_id"`
	PrizeName string    `db:"prize_name"`
	Rarity    string    `db:"rarity"`
	ChargeID  uuid.UUID `db:"charge_id"`
	CreatedAt time.Time `db:"created_at"`
}

// TitleCategoryLevel marks a title unlocked by reaching a level rather than
// by a counter threshold.
const TitleCategoryLevel = "level"

type TitleDefinition struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	Category      string `db:"category"`
	RequiredValue int    `db:"required_value"`
	Condition     string `db:"condition"`
}

type TitleGrant struct {
	StudentID int       `db:"student_id"`
	TitleID   string    `db:"title_id"`
	GrantedAt time.Time `db:"granted_at"`
}

// Score submission statuses; the approval processor drives NEW through
// PROCESSED or INVALID.
const (
	SubmissionNew        = "NEW"
	SubmissionProcessing = "PROCESSING"
	SubmissionProcessed  = "PROCESSED"
	SubmissionInvalid    = "INVALID"
)

type ScoreSubmission struct {
	ID         int       `db:"id"`
	StudentID  int       `db:"student_id"`
	Subject    string    `db:"subject"`
	Score      int       `db:"score"`
	Status     string    `db:"status"`
	UploadedAt time.Time `db:"uploaded_at"`
}
