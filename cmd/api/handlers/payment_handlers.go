package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/api/services"
)

// CheckoutHandler godoc
// @Summary      Build checkout options
// @Description  Returns the options object the payment widget is opened with. Amount is in paise.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CheckoutRequest  true  "checkout request"
// @Success      200   {object}  dto.CheckoutOptionsDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /payments/checkout [post]
func CheckoutHandler(paymentSvc *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req dto.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		opts, payErr := paymentSvc.Checkout(userID, req.Email, req.Plan)
		if payErr != nil {
			c.JSON(payErr.StatusCode, dto.ErrorResponseDTO{Error: payErr.Message})
			return
		}
		c.JSON(http.StatusOK, opts)
	}
}

// ConfirmPaymentHandler godoc
// @Summary      Confirm a payment
// @Description  Records the captured payment reported by the widget's success callback and applies the plan's credit reward.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ConfirmPaymentRequest  true  "confirmation"
// @Success      200   {object}  dto.ConfirmPaymentResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /payments/confirm [post]
func ConfirmPaymentHandler(paymentSvc *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req dto.ConfirmPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, payErr := paymentSvc.Confirm(c.Request.Context(), userID, req)
		if payErr != nil {
			c.JSON(payErr.StatusCode, dto.ErrorResponseDTO{Error: payErr.Message})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
