package economy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/dto"
	"github.com/jukuhub/studyquest/internal/service/drawservice"
	"github.com/jukuhub/studyquest/internal/service/spendservice"
	"github.com/jukuhub/studyquest/pkg/auth"
	"github.com/jukuhub/studyquest/pkg/utils"
)

type SpendService interface {
	Spend(ctx context.Context, studentID int, itemID string) (*spendservice.SpendResult, error)
	ListRewards(ctx context.Context) ([]domain.RewardItem, error)
}

type DrawService interface {
	Draw(ctx context.Context, studentID int) (*drawservice.DrawResult, error)
	GetHistory(ctx context.Context, studentID int) ([]domain.DrawRecord, error)
}

type EconomyHandler struct {
	spendService SpendService
	drawService  DrawService
}

func New(spendService SpendService, drawService DrawService) *EconomyHandler {
	return &EconomyHandler{
		spendService: spendService,
		drawService:  drawService,
	}
}

// Spend godoc
//
//	@Summary		Buy a reward item
//	@Description	Exchange points for a catalog item, honoring stock and per-student limits
//	@Tags			Economy
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO	true	"Spend request body"
//	@Success		200		{object}	dto.SpendResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Student not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient points"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		409		{object}	utils.Response	"Out of stock or limit reached"
//	@Failure		422		{object}	utils.Response	"Invalid item cost"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/student/spend [post]
func (h *EconomyHandler) Spend(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.spendService.Spend(r.Context(), studentID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, spendservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, spendservice.ErrOutOfStock), errors.Is(err, spendservice.ErrLimitReached):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, spendservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, spendservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SpendResponseDTO{
		EntryID:        result.EntryID.String(),
		Points:         result.RemainingPoints,
		RemainingStock: result.RemainingStock,
	})
}

// GetRewards godoc
//
//	@Summary		List reward catalog
//	@Description	All purchasable items with cost, remaining stock and per-student limit
//	@Tags			Economy
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardItemResponseDTO
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/rewards [get]
func (h *EconomyHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	items, err := h.spendService.ListRewards(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rewards")
		return
	}

	resp := make([]dto.RewardItemResponseDTO, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.RewardItemResponseDTO{
			ID:    item.ID,
			Name:  item.Name,
			Cost:  item.Cost,
			Stock: item.Stock,
			Limit: item.PerStudentLimit,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Draw godoc
//
//	@Summary		Draw a random prize
//	@Description	Pay the fixed draw cost and receive one weighted-random prize
//	@Tags			Economy
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DrawResponseDTO
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient points"
//	@Failure		422	{object}	utils.Response	"No prizes available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/draw [post]
func (h *EconomyHandler) Draw(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	result, err := h.drawService.Draw(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, spendservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, drawservice.ErrNoItemsAvailable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResponseDTO{
		PrizeID: result.PrizeID,
		Name:    result.PrizeName,
		Rarity:  result.Rarity,
		Points:  result.RemainingPoints,
	})
}

// GetDraws godoc
//
//	@Summary		Get draw history
//	@Description	Prizes won by the authenticated student, newest first
//	@Tags			Economy
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DrawRecordResponseDTO
//	@Success		204	{object}	utils.Response	"No draws yet"
//	@Failure		401	{object}	utils.Response	"Student not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/student/draws [get]
func (h *EconomyHandler) GetDraws(w http.ResponseWriter, r *http.Request) {
	studentID := r.Context().Value(auth.StudentIDKey).(int)

	records, err := h.drawService.GetHistory(r.Context(), studentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch draw history")
		return
	}
	if len(records) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, []dto.DrawRecordResponseDTO{})
		return
	}

	resp := make([]dto.DrawRecordResponseDTO, 0, len(records))
	for _, record := range records {
		resp = append(resp, dto.DrawRecordResponseDTO{
			PrizeID: record.PrizeID,
			Name:    record.PrizeName,
			Rarity:  record.Rarity,
			DrawnAt: record.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
