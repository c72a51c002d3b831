package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/api/services"
)

// ListPagesHandler godoc
// @Summary      List informational pages
// @Tags         pages
// @Produce      json
// @Success      200  {array}  dto.PageSummaryDTO
// @Router       /pages [get]
func ListPagesHandler(pageSvc *services.PageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, pageSvc.List())
	}
}

// GetPageHandler godoc
// @Summary      Get an informational page
// @Tags         pages
// @Param        slug  path  string  true  "page slug"
// @Produce      json
// @Success      200  {object}  dto.PageDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /pages/{slug} [get]
func GetPageHandler(pageSvc *services.PageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := pageSvc.Get(c.Param("slug"))
		if err != nil {
			if errors.Is(err, services.ErrPageNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "page_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_page"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
