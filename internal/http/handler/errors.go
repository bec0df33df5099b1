package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/common/id"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

var knownErrors = []struct {
	err    error
	status int
	msg    string
}{
	{service.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{service.ErrThreadClosed, http.StatusForbidden, "Cannot add comments to completed threads"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrIssueNotFound, http.StatusNotFound, "Issue not found"},
	{service.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{service.ErrDashboardNotFound, http.StatusNotFound, "Dashboard not found"},
	{service.ErrChartNotFound, http.StatusNotFound, "Chart not found"},
	{service.ErrTeamNotFound, http.StatusNotFound, "Team not found"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrNotificationNotFound, http.StatusNotFound, "Notification not found"},
	{service.ErrAdminRequestNotFound, http.StatusNotFound, "Admin request not found"},
	{service.ErrEmailTaken, http.StatusConflict, "An account with this email already exists"},
	{service.ErrTeamNameTaken, http.StatusConflict, "A team with this name already exists"},
	{service.ErrAdminRequestClosed, http.StatusConflict, "Admin request has already been handled"},
	{service.ErrAttachmentTooLarge, http.StatusBadRequest, "File exceeds the 10 MiB limit"},
	{service.ErrStorageDisabled, http.StatusServiceUnavailable, "File uploads are not configured"},
	{service.ErrLivePushDisabled, http.StatusServiceUnavailable, "Live notifications are not configured"},
	{model.ErrUnknownRole, http.StatusBadRequest, "Invalid role. Valid roles: business, data_science, admin"},
}

// writeError maps service errors onto the HTTP taxonomy. Anything unrecognised
// is logged with the fallback message and reported as a 500.
func writeError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		return
	}

	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			c.JSON(known.status, gin.H{"error": known.msg})
			return
		}
	}

	if service.IsUniqueViolation(err) {
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
		return
	}

	slog.ErrorContext(c.Request.Context(), fallback, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}

// pathID parses a snowflake path parameter, writing a 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return v, true
}

// queryID parses an optional snowflake query parameter.
func queryID(c *gin.Context, name string) (*int64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := id.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
