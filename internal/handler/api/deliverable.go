package api

import (
	"errors"
	"net/http"

	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/handler/httperr"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeliverableHandler struct {
	cmds commands.DeliverableCommands
}

func NewDeliverableHandler(cmds commands.DeliverableCommands) *DeliverableHandler {
	return &DeliverableHandler{cmds: cmds}
}

// @Summary Create deliverable
// @Description Add a deliverable to an own deal; conflicts are recomputed in the same transaction
// @Tags deliverables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.CreateDeliverableRequest true "Create deliverable request"
// @Success 201 {object} resdto.CreateDeliverableResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/deliverables [post]
func (h *DeliverableHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.CreateDeliverableRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateDeliverable(c.Request.Context(), dealID, req, userID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, commands.ErrDealNotFound) {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Create deliverable failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"deliverable_id": result.DeliverableID.String(),
		"reconcile":      resdto.FromReconcileStats(result.Reconcile),
	})
}

// @Summary Update deliverable
// @Description Reschedule or change status; conflicts are recomputed in the same transaction
// @Tags deliverables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deliverable ID"
// @Param request body reqdto.UpdateDeliverableRequest true "Update deliverable request"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deliverables/{id} [patch]
func (h *DeliverableHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdateDeliverableRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	stats, err := h.cmds.UpdateDeliverable(c.Request.Context(), id, req, userID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, commands.ErrDeliverableNotFound) {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Update deliverable failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileStats(*stats))
}
