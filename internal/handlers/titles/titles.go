package titles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jukuhub/studyquest/internal/dto"
	"github.com/jukuhub/studyquest/internal/service/titleservice"
	"github.com/jukuhub/studyquest/pkg/auth"
	"github.com/jukuhub/studyquest/pkg/utils"
)

type Service interface {
	Evaluate(ctx context.Context, studentID int) ([]string, error)
	GetEarned(ctx context.Context, studentID int) ([]titleservice.EarnedTitle, error)
	SetActive(ctx context.Context, studentID int, titleID *string) error
}

type TitlesHandler struct {
	titleService Service
}

func New(titleService Service) *TitlesHandler {
	return &TitlesHandler{
		titleService: titleService,
	}
}

// Evaluate godoc
//
//	@Summary		Evaluate achievement rules
//	@Description	Grant every title whose condition the student now satisfies; returns only titles granted by this call
//	@Tags			Titles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EvaluateTitlesResponseDTO
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		404	{object}	utils.Response	"Student not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/titles/evaluate [post]
func (h *TitlesHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	granted, err := h.titleService.Evaluate(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, titleservice.ErrStudentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EvaluateTitlesResponseDTO{
		Granted: granted,
	})
}

// GetTitles godoc
//
//	@Summary		Get earned titles
//	@Description	All titles the authenticated student has earned, with grant dates
//	@Tags			Titles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TitleResponseDTO
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/titles [get]
func (h *TitlesHandler) GetTitles(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	earned, err := h.titleService.GetEarned(r.Context(), studentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch titles")
		return
	}

	resp := make([]dto.TitleResponseDTO, 0, len(earned))
	for _, title := range earned {
		resp = append(resp, dto.TitleResponseDTO{
			ID:          title.ID,
			Name:        title.Name,
			Description: title.Description,
			GrantedAt:   title.GrantedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// SetActive godoc
//
//	@Summary		Set the displayed title
//	@Description	Pick one earned title for the profile, or clear it with a null id
//	@Tags			Titles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetActiveTitleRequestDTO	true	"Set active title request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Student not authorized"
//	@Failure		409		{object}	utils.Response	"Title not earned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/student/titles/active [put]
func (h *TitlesHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	var req dto.SetActiveTitleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.titleService.SetActive(r.Context(), studentID, req.TitleID); err != nil {
		switch {
		case errors.Is(err, titleservice.ErrNotEarned):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Active title updated"})
}
