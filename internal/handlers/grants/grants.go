package grants

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/dto"
	"github.com/jukuhub/studyquest/internal/service/ledgerservice"
	"github.com/jukuhub/studyquest/pkg/auth"
	"github.com/jukuhub/studyquest/pkg/utils"
	"github.com/jukuhub/studyquest/pkg/validate"
)

type Service interface {
	Grant(ctx context.Context, studentID int, kind string, expDelta, pointsDelta int, counterDeltas map[string]int) (*ledgerservice.GrantResult, error)
	Revoke(ctx context.Context, studentID int, entryID uuid.UUID) (*ledgerservice.RevokeResult, error)
	CloseSession(ctx context.Context, studentID int, forced bool, appliedMinutes int) (*ledgerservice.GrantResult, error)
	GetAccount(ctx context.Context, studentID int) (*domain.Student, error)
	GetLedger(ctx context.Context, studentID int) ([]domain.LedgerEntry, error)
}

type GrantsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *GrantsHandler {
	return &GrantsHandler{
		ledgerService: ledgerService,
	}
}

// Kinds a client may record directly. Score grants come from the approval
// processor, spend and draw-charge from the economy endpoints.
var recordableKinds = map[string]struct{}{
	domain.KindHomework:  {},
	domain.KindWordTest:  {},
	domain.KindSelfStudy: {},
}

// Grant godoc
//
//	@Summary		Record a progression event
//	@Description	Apply experience, points and counter increments for a completed activity
//	@Tags			Grants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GrantRequestDTO	true	"Grant request body"
//	@Success		200		{object}	dto.GrantResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Student not authorized"
//	@Failure		404		{object}	utils.Response	"Student not found"
//	@Failure		422		{object}	utils.Response	"Unknown kind or counter name"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/student/grants [post]
func (h *GrantsHandler) Grant(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	var req dto.GrantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, ok := recordableKinds[req.Kind]; !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown grant kind")
		return
	}
	for name := range req.Counters {
		if !validate.IsCounterName(name) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown counter name")
			return
		}
	}

	result, err := h.ledgerService.Grant(r.Context(), studentID, req.Kind, req.Exp, req.Points, req.Counters)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrStudentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GrantResponseDTO{
		EntryID:  result.EntryID.String(),
		Level:    result.NewLevel,
		Exp:      result.Experience,
		LevelUps: result.LevelUps,
		Points:   result.AppliedPoints,
	})
}

// Revoke godoc
//
//	@Summary		Revoke a recorded event
//	@Description	Reverse a previously applied ledger entry by its id
//	@Tags			Grants
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Ledger entry id"
//	@Success		200	{object}	dto.RevokeResponseDTO
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		404	{object}	utils.Response	"Entry not found"
//	@Failure		409	{object}	utils.Response	"Entry already reversed"
//	@Failure		422	{object}	utils.Response	"Invalid entry id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/grants/{id}/revoke [post]
func (h *GrantsHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid entry id")
		return
	}

	result, err := h.ledgerService.Revoke(r.Context(), studentID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrNotFound), errors.Is(err, ledgerservice.ErrStudentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrAlreadyReversed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RevokeResponseDTO{
		EntryID: result.EntryID.String(),
		Level:   result.NewLevel,
		Points:  result.AppliedPoints,
	})
}

// CloseSession godoc
//
//	@Summary		Close a study session
//	@Description	Convert attended study minutes into a self-study reward. Forced closes earn nothing.
//	@Tags			Grants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CloseSessionRequestDTO	true	"Close session request body"
//	@Success		200		{object}	dto.CloseSessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Student not authorized"
//	@Failure		404		{object}	utils.Response	"Student not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/student/sessions/close [post]
func (h *GrantsHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	var req dto.CloseSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ledgerService.CloseSession(r.Context(), studentID, req.Forced, req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrStudentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.CloseSessionResponseDTO{Level: result.NewLevel}
	if result.EntryID != uuid.Nil {
		resp.EntryID = result.EntryID.String()
	}
	resp.GainedExp = result.AppliedExp
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetAccount godoc
//
//	@Summary		Get current account state
//	@Description	Level, experience, points and activity counters for the authenticated student
//	@Tags			Grants
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		404	{object}	utils.Response	"Student not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/account [get]
func (h *GrantsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	student, err := h.ledgerService.GetAccount(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrStudentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		Level:         student.Level,
		Exp:           student.Experience,
		ExpToNext:     domain.ExpNeeded(student.Level),
		Points:        student.Points,
		Counters:      student.Counters,
		ActiveTitleID: student.ActiveTitleID,
	})
}

// GetLedger godoc
//
//	@Summary		Get ledger history
//	@Description	All applied entries for the authenticated student, newest first
//	@Tags			Grants
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO
//	@Success		204	{object}	utils.Response	"No entries"
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/ledger [get]
func (h *GrantsHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	entries, err := h.ledgerService.GetLedger(r.Context(), studentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, []dto.LedgerEntryResponseDTO{})
		return
	}

	resp := make([]dto.LedgerEntryResponseDTO, 0, len(entries))
	for _, entry := range entries {
		item := dto.LedgerEntryResponseDTO{
			ID:        entry.ID.String(),
			Kind:      entry.Kind,
			Exp:       entry.ExpDelta,
			Points:    entry.PointsDelta,
			Counters:  entry.CounterDeltas,
			Reversed:  entry.Reversed,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		}
		if entry.ReversalOf != nil {
			ref := entry.ReversalOf.String()
			item.ReversalOf = &ref
		}
		resp = append(resp, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
