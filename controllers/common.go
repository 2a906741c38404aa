package controllers

import (
	"strconv"

	"stayhub/errors"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// respondError maps an AppError to the matching envelope response
func respondError(c *gin.Context, err error) {
	if !errors.IsAppError(err) {
		response.ServerError(c)
		return
	}
	appErr := errors.GetAppError(err)

	switch appErr.Code {
	case errors.ErrCodeNotFound, errors.ErrCodeUserNotFound:
		response.NotFound(c)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	case errors.ErrCodeOverlap, errors.ErrCodeRoomInUse, errors.ErrCodeUserExists:
		response.Conflict(c, appErr.Message)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

// currentUserID reads the authenticated user id set by the auth middleware
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// currentUserRole reads the authenticated role set by the auth middleware
func currentUserRole(c *gin.Context) (int, bool) {
	value, exists := c.Get("userRole")
	if !exists {
		return 0, false
	}
	role, ok := value.(int)
	return role, ok
}

// pageParams reads the page/limit query parameters
func pageParams(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

// paginate slices a window out of a list
func paginate[T any](items []T, page, limit int) []T {
	start := page * limit
	end := start + limit
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		return items[start:]
	}
	return items[start:end]
}
