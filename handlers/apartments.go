package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apartmentRepo "stayhaven/database/repository/apartment"
)

// ApartmentHandler serves the read-only listing endpoints the booking UI
// browses. Listing management lives in the owner dashboard service.
type ApartmentHandler struct {
	Repo apartmentRepo.ApartmentRepository
}

// NewApartmentHandler creates a new ApartmentHandler.
func NewApartmentHandler(repo apartmentRepo.ApartmentRepository) *ApartmentHandler {
	return &ApartmentHandler{Repo: repo}
}

// ListApartments returns every active listing.
func (ah *ApartmentHandler) ListApartments(c *gin.Context) {
	apartments, err := ah.Repo.GetAllActive()
	if err != nil {
		getLogger(c).Error("Failed to fetch apartments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch apartments"})
		return
	}
	c.JSON(http.StatusOK, apartments)
}

// GetApartmentBySlug returns one listing by its URL slug.
func (ah *ApartmentHandler) GetApartmentBySlug(c *gin.Context) {
	apt, err := ah.Repo.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}
