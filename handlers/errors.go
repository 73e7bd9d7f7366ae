package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"stayhaven/models"
	"stayhaven/services/booking"
	"stayhaven/utils"
)

// respondError maps service errors onto HTTP responses. Rejections are
// business outcomes and answered with 422 so clients can branch on the code;
// anything unclassified is a 500 with the detail kept out of the body.
func respondError(c *gin.Context, err error) {
	if ve, ok := booking.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	if rej, ok := booking.AsRejection(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": rej.Code, "message": rej.Message})
		return
	}
	var te *booking.TransitionError
	if errors.As(err, &te) {
		c.JSON(http.StatusConflict, gin.H{"error": te.Error()})
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(c, http.StatusNotFound, "not found", "")
		return
	}
	getLogger(c).Error("request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal server error", "An unexpected error occurred. Please try again later.")
}

// parseDate reads a YYYY-MM-DD value.
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, booking.NewValidationError(field, "expected a YYYY-MM-DD date")
	}
	return t, nil
}

// parseDateRange reads a required check-in/check-out style pair.
func parseDateRange(fromValue, toValue, fromField, toField string) (time.Time, time.Time, error) {
	from, err := parseDate(fromValue, fromField)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(toValue, toField)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
