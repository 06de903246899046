package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review attributes",
			})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrReviewNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You can only review your own bookings",
			})
		case errors.Is(err, commands.ErrBookingNotEligible):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only completed bookings can be reviewed",
			})
		case errors.Is(err, commands.ErrReviewAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already has a review",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review_id": result.ReviewID})
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid review ID format",
		})
		return
	}

	view, err := h.reviewQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Review not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

func (h *ReviewHandler) ListCarReviews(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	views, err := h.reviewQueries.ListByCar(c.Request.Context(), carID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReviewResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReviewView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReviewHandler) GetCarRatingStats(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	stats, err := h.reviewQueries.CarRatingStats(c.Request.Context(), carID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarRatingStats(stats))
}
