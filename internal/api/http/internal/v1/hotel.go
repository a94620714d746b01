package v1

import (
	"net/http"
	"strconv"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initHotelsRoutes(api *gin.RouterGroup) {
	hotels := api.Group("/hotels")
	{
		hotels.GET("", h.getHotelsList)
		hotels.GET("/:id", h.getHotelByID)
	}
}

type hotelsListResponse struct {
	Success bool           `json:"success"`
	Hotels  []domain.Hotel `json:"hotels"`
}

type hotelResponse struct {
	Success bool          `json:"success"`
	Hotel   *domain.Hotel `json:"hotel"`
}

// @Summary Hotels list
// @Tags Hotels
// @Description Search the hotel catalogue
// @ModuleID getHotelsList
// @Produce  json
// @Param search query string false "text in name or description"
// @Param city query string false "city"
// @Param min_stars query int false "minimum stars, 0-5"
// @Success 200 {object} hotelsListResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /hotels [get]
func (h *Handler) getHotelsList(c *gin.Context) {
	filter := domain.HotelFilter{
		Search: c.Query("search"),
		City:   c.Query("city"),
	}

	if minStars := c.Query("min_stars"); minStars != "" {
		stars, err := strconv.Atoi(minStars)
		if err != nil {
			abortWithMessage(c, http.StatusBadRequest, "min_stars must be a number")
			return
		}
		filter.MinStars = stars
	}

	hotels, err := h.services.Hotels.GetAll(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}

	c.JSON(http.StatusOK, hotelsListResponse{Success: true, Hotels: hotels})
}

// @Summary Hotel
// @Tags Hotels
// @Description Hotel with its room types
// @ModuleID getHotelByID
// @Produce  json
// @Param id path string true "hotel id"
// @Success 200 {object} hotelResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /hotels/{id} [get]
func (h *Handler) getHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	hotel, err := h.services.Hotels.GetOneByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, hotelResponse{Success: true, Hotel: hotel})
}
