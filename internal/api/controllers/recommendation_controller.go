package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hikematch/internal/models/request_models"
	"hikematch/internal/services"
	"hikematch/pkg/utils"
)

const formatText = "text"

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

func (rc *RecommendationController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := rc.recommendationService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if c.Query("format") == formatText {
		c.String(http.StatusOK, rc.recommendationService.RenderText(result))
		return
	}
	utils.RespondSuccess(c, result, "Recommendations generated successfully")
}

func (rc *RecommendationController) GetResultHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	result, err := rc.recommendationService.GetResult(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if c.Query("format") == formatText {
		c.String(http.StatusOK, rc.recommendationService.RenderText(result))
		return
	}
	utils.RespondSuccess(c, result, "Recommendations fetched successfully")
}
