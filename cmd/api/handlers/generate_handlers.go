package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/api/services"
)

// GenerateHandler godoc
// @Summary      Generate scripts
// @Description  Runs one gated script generation and returns the full result set. Consumes one credit.
// @Tags         generate
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerateRequest  true  "generation brief"
// @Success      200   {object}  dto.GenerateResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      402   {object}  dto.ErrorResponseDTO  "out of credits"
// @Failure      403   {object}  dto.ErrorResponseDTO  "plan or daily limit"
// @Failure      422   {object}  dto.ErrorResponseDTO  "model refusal"
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /generate [post]
func GenerateHandler(genSvc *services.GenerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req dto.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, genErr := genSvc.Generate(c.Request.Context(), userID, req.ToConfig(), nil)
		if genErr != nil {
			c.JSON(genErr.StatusCode, dto.ErrorResponseDTO{Error: genErr.Message})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GenerateStreamHandler godoc
// @Summary      Generate scripts with live progress
// @Description  Same gated generation as /generate, streamed as Server-Sent Events: "fragment" events carry raw text deltas as the model produces them, one final "result" event carries the assembled scripts, and an "error" event ends a failed stream.
// @Tags         generate
// @Security     BearerAuth
// @Accept       json
// @Produce      text/event-stream
// @Param        body  body   dto.GenerateRequest  true  "generation brief"
// @Success      200   {string}  string  "event stream"
// @Router       /generate/stream [post]
func GenerateStreamHandler(genSvc *services.GenerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req dto.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.WriteHeader(http.StatusOK)
		c.Writer.Flush()

		// fragments are relayed as deltas of the accumulated raw text
		sent := 0
		onFragment := func(total string) {
			if len(total) <= sent {
				return
			}
			c.SSEvent("fragment", total[sent:])
			sent = len(total)
			c.Writer.Flush()
		}

		resp, genErr := genSvc.Generate(c.Request.Context(), userID, req.ToConfig(), onFragment)
		if genErr != nil {
			c.SSEvent("error", genErr.Message)
			c.Writer.Flush()
			return
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			c.SSEvent("error", "failed to encode the result")
			c.Writer.Flush()
			return
		}
		c.SSEvent("result", string(payload))
		c.Writer.Flush()
	}
}
