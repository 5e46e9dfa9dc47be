package handlers

import (
	"errors"
	"net/http"

	svcbooking "carexyz/services/booking"
	"carexyz/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer error types onto HTTP semantics:
// validation → 400 with a field map, not found → 404, ownership → 403,
// status guard → 409, anything else → 500.
func respondServiceError(c *gin.Context, err error) {
	var vErr *svcbooking.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONFieldErrors(c, vErr.Fields)
		return
	}

	var nfErr *svcbooking.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
		return
	}

	var fErr *svcbooking.ForbiddenError
	if errors.As(err, &fErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": fErr.Error()})
		return
	}

	var cErr *svcbooking.ConflictError
	if errors.As(err, &cErr) {
		c.JSON(http.StatusConflict, gin.H{"error": cErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
