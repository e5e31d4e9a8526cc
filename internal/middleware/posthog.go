package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/agency_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1/"

// actionByMethod names the operation an HTTP method performs on a resource.
var actionByMethod = map[string]string{
	http.MethodGet:    "viewed",
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodPatch:  "updated",
	http.MethodDelete: "deleted",
}

// usageEvent turns a route pattern into an analytics event, e.g.
// PATCH /api/v1/flights/:id/status -> "flights_status updated" in area "backoffice".
// Routes outside /api/v1 are not tracked.
func usageEvent(method, fullPath string) (event, area string, ok bool) {
	if !strings.HasPrefix(fullPath, apiPrefix) {
		return "", "", false
	}
	action, known := actionByMethod[method]
	if !known {
		return "", "", false
	}

	area = "backoffice"
	rest := strings.TrimPrefix(fullPath, apiPrefix)
	if after, found := strings.CutPrefix(rest, "portal/"); found {
		area = "portal"
		rest = after
	}

	var parts []string
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, seg)
	}
	if len(parts) == 0 {
		return "", "", false
	}
	// The ledger endpoints are calculators; name them after the calculation.
	if parts[0] == "ledger" && method == http.MethodPost {
		action = "computed"
	}
	return strings.Join(parts, "_") + " " + action, area, true
}

// PosthogMiddleware records successful authenticated API calls.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !posthogClient.IsInitialized() || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		event, area, ok := usageEvent(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		props := map[string]any{
			"area":        area,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"role":        GetUserRoleFromContext(c),
		}
		if id := c.Param("id"); id != "" {
			props["record_id"] = id
		}
		posthogClient.Enqueue(userID, event, props)
	}
}
