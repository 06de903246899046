package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{
		carCommands: carCommands,
		carQueries:  carQueries,
	}
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.carCommands.CreateCar(c.Request.Context(), commands.CreateCarRequest{
		Name:           req.Name,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		Location:       req.Location,
		DailyRateCents: req.DailyRateCents,
	}, actorID, actorRole)
	if err != nil {
		respondCarCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"car_id": result.CarID})
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.carCommands.UpdateCar(c.Request.Context(), id, commands.UpdateCarRequest{
		Name:           req.Name,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		Location:       req.Location,
		DailyRateCents: req.DailyRateCents,
	}, actorID, actorRole)
	if err != nil {
		respondCarCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *CarHandler) UpdateCarStatus(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	var req reqdto.UpdateCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.carCommands.UpdateCarStatus(c.Request.Context(), id, req.Status, actorID, actorRole); err != nil {
		respondCarCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	view, err := h.carQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

func (h *CarHandler) SearchCars(c *gin.Context) {
	filters := reqdto.ParseCarSearchFilters(c)

	items, err := h.carQueries.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CarListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromCarListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func respondCarCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCarValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car attributes",
		})
	case errors.Is(err, commands.ErrCarNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Car not found",
		})
	case errors.Is(err, commands.ErrCarForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You cannot manage this car",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
