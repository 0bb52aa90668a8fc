package controllers

import (
	"github.com/gin-gonic/gin"

	"hikematch/internal/trail"
	"hikematch/pkg/utils"
)

type HealthController struct {
	catalog *trail.Catalog
}

func NewHealthController(catalog *trail.Catalog) *HealthController {
	return &HealthController{catalog: catalog}
}

func (hc *HealthController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"status": "ok",
		"trails": hc.catalog.Len(),
	}, "")
}
