// Package response renders the {success, message, ...} envelope every
// endpoint answers with.
package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/apperrors"
	log "github.com/sirupsen/logrus"
)

// Success writes a successful envelope. payload keys are merged next to
// success and message.
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes an error envelope with the given status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation, apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindAuth:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error renders err. Typed messages pass through; unexpected failures are
// logged and answered with fallback.
func Error(c *gin.Context, err error, fallback string) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindUnexpected {
		Internal(c, err, fallback)
		return
	}
	Fail(c, StatusFor(kind), apperrors.MessageOf(err))
}

// Internal logs err and answers 500 with message, whatever the error kind.
// Listing endpoints use it so that no failure detail leaks.
func Internal(c *gin.Context, err error, message string) {
	log.WithFields(log.Fields{
		"method":    c.Request.Method,
		"path":      c.FullPath(),
		"requestId": c.GetString("request_id"),
	}).WithError(err).Error(message)
	Fail(c, http.StatusInternalServerError, message)
}

// PathID parses the named path parameter as an id. On failure it answers
// 400 and returns false.
func PathID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// QueryID is PathID for a query parameter. A missing parameter reports
// message.
func QueryID(c *gin.Context, param, missing string) (uint, bool) {
	raw := c.Query(param)
	if raw == "" {
		BadRequest(c, missing)
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// BadRequest answers a malformed body or parameter.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}
