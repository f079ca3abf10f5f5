package api

import (
	"errors"
	"net/http"

	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/handler/httperr"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	cmds commands.BrandCommands
	q    queries.BrandQueries
}

func NewBrandHandler(cmds commands.BrandCommands, q queries.BrandQueries) *BrandHandler {
	return &BrandHandler{cmds: cmds, q: q}
}

// @Summary Create brand
// @Description Register a brand in the creator's portfolio
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBrandRequest true "Create brand request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /brands [post]
func (h *BrandHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateBrand(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateBrand) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Brand already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create brand failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"brand_id": id.String()})
}

// @Summary List brands
// @Description List the creator's brands
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BrandResponse
// @Failure 401 {object} map[string]string
// @Router /brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list brands", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBrandList(items))
}
