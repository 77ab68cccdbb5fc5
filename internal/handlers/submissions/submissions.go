package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/dto"
	"github.com/jukuhub/studyquest/internal/service/submissionservice"
	"github.com/jukuhub/studyquest/pkg/auth"
	"github.com/jukuhub/studyquest/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, studentID int, subject string, score int) (*domain.ScoreSubmission, error)
	GetSubmissions(ctx context.Context, studentID int) ([]domain.ScoreSubmission, error)
}

type SubmissionsHandler struct {
	submissionService Service
}

func New(submissionService Service) *SubmissionsHandler {
	return &SubmissionsHandler{
		submissionService: submissionService,
	}
}

// Submit godoc
//
//	@Summary		Upload a test score
//	@Description	Register a score claim. The judge system verifies it asynchronously; rewards follow approval.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitScoreRequestDTO	true	"Submit score request body"
//	@Success		202		{object}	dto.SubmissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Student not authorized"
//	@Failure		422		{object}	utils.Response	"Score out of range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/student/submissions [post]
func (h *SubmissionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	var req dto.SubmitScoreRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.submissionService.Submit(r.Context(), studentID, req.Subject, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, submissionservice.ErrInvalidScore):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.SubmissionResponseDTO{
		ID:         submission.ID,
		Subject:    submission.Subject,
		Score:      submission.Score,
		Status:     submission.Status,
		UploadedAt: submission.UploadedAt.Format(time.RFC3339),
	})
}

// GetSubmissions godoc
//
//	@Summary		Get score submissions
//	@Description	All score submissions of the authenticated student with their judging status
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubmissionResponseDTO
//	@Success		204	{object}	utils.Response	"No submissions"
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/submissions [get]
func (h *SubmissionsHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	submissions, err := h.submissionService.GetSubmissions(r.Context(), studentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	if len(submissions) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, []dto.SubmissionResponseDTO{})
		return
	}

	resp := make([]dto.SubmissionResponseDTO, 0, len(submissions))
	for _, submission := range submissions {
		resp = append(resp, dto.SubmissionResponseDTO{
			ID:         submission.ID,
			Subject:    submission.Subject,
			Score:      submission.Score,
			Status:     submission.Status,
			UploadedAt: submission.UploadedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
