package handler

import (
	"context"
	"errors"
	"net/http"

	"auction-house/internal/sweep"
	"auction-house/services/bidding/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// SweepRunner triggers one sweep pass on demand.
type SweepRunner interface {
	RunTick(ctx context.Context) (sweep.TickSummary, error)
}

type AdminHandler struct {
	sweep SweepRunner
}

func NewAdminHandler(runner SweepRunner) *AdminHandler {
	return &AdminHandler{sweep: runner}
}

// RunSweepHandler handles POST /admin/sweep
func (h *AdminHandler) RunSweepHandler(c *gin.Context) {
	summary, err := h.sweep.RunTick(c.Request.Context())
	if errors.Is(err, sweep.ErrTickInProgress) {
		utils.JSONError(c, http.StatusConflict, err, "sweep already running")
		return
	}
	if err != nil {
		helpers.RespondError(c, "RunSweepHandler", "run sweep", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, summary, "sweep finished")
}
