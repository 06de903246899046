package api

import (
	"errors"
	"io"
	"net/http"

	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Stripe caps webhook payloads well below this; anything larger is garbage.
const maxWebhookBodyBytes = 1 << 16

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.paymentCommands.CreatePaymentIntent(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You can only pay for your own bookings",
			})
		case errors.Is(err, commands.ErrPaymentInvalidState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not awaiting payment",
			})
		case errors.Is(err, commands.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateIntentResult(result))
}

// StripeWebhook is unauthenticated; trust comes from the signature check.
// Verification failures return a generic 400 with no detail.
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payload",
		})
		return
	}

	err = h.paymentCommands.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookVerification):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid webhook signature",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
