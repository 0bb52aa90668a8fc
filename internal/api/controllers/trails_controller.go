package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hikematch/internal/services"
	"hikematch/pkg/utils"
)

type TrailController struct {
	trailService services.TrailServiceInterface
}

func NewTrailController(trailService services.TrailServiceInterface) *TrailController {
	return &TrailController{
		trailService: trailService,
	}
}

func (tc *TrailController) ListTrailsHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	trails, err := tc.trailService.ListTrails(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trails, "Fetched trails successfully")
}

func (tc *TrailController) GetTrailHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trail name is required")
		return
	}

	t, err := tc.trailService.GetTrail(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, t, "Trail fetched successfully")
}
