package api

import (
	"errors"
	"net/http"
	"strings"

	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/handler/httperr"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConflictHandler struct {
	cmds commands.ConflictCommands
	q    queries.ConflictQueries
}

func NewConflictHandler(cmds commands.ConflictCommands, q queries.ConflictQueries) *ConflictHandler {
	return &ConflictHandler{cmds: cmds, q: q}
}

// @Summary List conflicts
// @Description List own conflicts, BLOCK before WARN, newest first
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter: active, resolved or all" default(active)
// @Param deal_id query string false "Restrict to conflicts involving one deal"
// @Success 200 {array} resdto.ConflictListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /conflicts [get]
func (h *ConflictHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	filter := queries.StatusFilter(strings.ToLower(c.DefaultQuery("status", "active")))

	var (
		items []*queries.ConflictListItem
		err   error
	)
	if dealParam := c.Query("deal_id"); dealParam != "" {
		dealID, perr := uuid.Parse(dealParam)
		if perr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, perr, "Invalid deal_id", nil)
			return
		}
		items, err = h.q.ListByDeal(c.Request.Context(), userID, dealID, filter)
	} else {
		items, err = h.q.ListByUser(c.Request.Context(), userID, filter)
	}
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidStatusFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
		case errors.Is(err, queries.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list conflicts", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictList(items))
}

// @Summary Get conflict
// @Description Get an own conflict with full overlap metadata and suggestions
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conflict ID"
// @Success 200 {object} resdto.ConflictResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conflicts/{id} [get]
func (h *ConflictHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrConflictNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Conflict not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load conflict", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictView(view))
}

// @Summary Resolve conflict
// @Description Mark an active conflict as manually resolved
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conflict ID"
// @Success 200 {object} resdto.ConflictResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /conflicts/{id}/resolve [post]
func (h *ConflictHandler) Resolve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.ResolveConflict(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrConflictNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Conflict not found", nil)
		case errors.Is(err, commands.ErrConflictAlreadyResolved):
			httperr.AbortWithError(c, http.StatusConflict, err, "Conflict already resolved", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Resolve conflict failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load conflict", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictView(view))
}

// @Summary Conflict summary
// @Description Active conflict counts for the creator's portfolio
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ConflictSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /conflicts/summary [get]
func (h *ConflictHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	summary, err := h.q.GetSummary(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load summary", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictSummary(summary))
}

// @Summary Recompute user conflicts
// @Description Run a full reconciliation pass over one user's portfolio
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/users/{id}/reconcile [post]
func (h *ConflictHandler) Recompute(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	stats, err := h.cmds.Recompute(c.Request.Context(), targetID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Recompute failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileStats(*stats))
}
