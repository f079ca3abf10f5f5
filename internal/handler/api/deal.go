package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/handler/httperr"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("request missing authenticated user")

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.DealQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary Create deal
// @Description Create a new brand deal; conflicts are recomputed in the same transaction
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDealRequest true "Create deal request"
// @Success 201 {object} resdto.CreateDealResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateDeal(c.Request.Context(), req, userID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, commands.ErrBrandNotFound) {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Create deal failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, result.DealID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateDealResponse{
		Deal:      resdto.FromDealView(view),
		Reconcile: resdto.FromReconcileStats(result.Reconcile),
	})
}

// @Summary List deals
// @Description List own deals with keyset pagination
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from previous page"
// @Success 200 {object} resdto.DealListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list deals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(items, next))
}

// @Summary Get deal
// @Description Get an own deal by ID
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
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
		if errors.Is(err, queries.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Update deal
// @Description Update status, title or exclusivity clause; conflicts are recomputed in the same transaction
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.UpdateDealRequest true "Update deal request"
// @Success 200 {object} resdto.UpdateDealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [patch]
func (h *DealHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdateDealRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	stats, err := h.cmds.UpdateDeal(c.Request.Context(), id, req, userID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, commands.ErrDealNotFound) {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Update deal failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.UpdateDealResponse{
		Deal:      resdto.FromDealView(view),
		Reconcile: resdto.FromReconcileStats(*stats),
	})
}

// @Summary Cancel deal
// @Description Cancel a deal; its conflicts auto-resolve in the same transaction
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [delete]
func (h *DealHandler) Cancel(c *gin.Context) {
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

	stats, err := h.cmds.CancelDeal(c.Request.Context(), id, userID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, commands.ErrDealNotFound) {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Cancel deal failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileStats(*stats))
}

// @Summary List deal deliverables
// @Description List deliverables of an own deal
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {array} resdto.DeliverableResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/deliverables [get]
func (h *DealHandler) ListDeliverables(c *gin.Context) {
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

	items, err := h.q.ListDeliverables(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list deliverables", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliverableList(items))
}
