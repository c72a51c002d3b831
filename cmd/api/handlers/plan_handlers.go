package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/services"
)

// ListPlansHandler godoc
// @Summary      Pricing catalog
// @Description  Lists the subscription tiers with price, credit reward and per-generation script cap.
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.PlanDTO
// @Router       /plans [get]
func ListPlansHandler(planSvc *services.PlanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, planSvc.List())
	}
}
