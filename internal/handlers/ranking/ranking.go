package ranking

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jukuhub/studyquest/internal/dto"
	rankrepo "github.com/jukuhub/studyquest/internal/repo/rank-repo"
	"github.com/jukuhub/studyquest/pkg/utils"
)

type Service interface {
	Top(ctx context.Context, n int64) ([]rankrepo.Entry, error)
}

type RankingHandler struct {
	rankService Service
}

func New(rankService Service) *RankingHandler {
	return &RankingHandler{
		rankService: rankService,
	}
}

// GetRanking godoc
//
//	@Summary		Get the leaderboard
//	@Description	Top students ordered by level then experience. The limit query parameter defaults to 10.
//	@Tags			Ranking
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries"
//	@Success		200		{array}		dto.RankingEntryResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ranking [get]
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	entries, err := h.rankService.Top(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ranking")
		return
	}

	resp := make([]dto.RankingEntryResponseDTO, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.RankingEntryResponseDTO{
			Rank:      entry.Rank,
			StudentID: entry.StudentID,
			Level:     entry.Level,
			Exp:       entry.Experience,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
