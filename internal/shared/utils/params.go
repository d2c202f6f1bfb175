package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"clubcms/internal/shared/constants"
	"clubcms/internal/shared/errors"
)

// ParseIDParam parses a positive integer ID from a URL path parameter.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// ParsePagination reads limit/offset query parameters with defaults and caps.
func ParsePagination(c *gin.Context) (limit, offset int) {
	limit = constants.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}

// GetUserIDFromContext extracts the authenticated user ID set by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	return id, nil
}
