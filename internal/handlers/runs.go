package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List calculation runs
// @Description  Filter the calculation history by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         runs
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2026-08-01)
// @Param        to    query   string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). Date-only treated as end of day."  example(2026-08-31)
// @Param        kind  query   string  false  "Run kind"  Enums(SYSTEM,SYSTEM_CURVE,CURVE_FIT,AFFINITY,OPERATING_POINT,NPSH,COMPLIANCE,REPORT)
// @Success      200   {object}  map[string]interface{}  "count, runs"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/runs [get]
// @Security     BearerAuth
func (h *Handler) getRuns(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from time.Time
		to   time.Time
		// Normalize run kind: trim spaces and uppercase to match stored values.
		kind = strings.ToUpper(strings.TrimSpace(c.Query("kind")))
		err  error
	)
	// Parse 'from' (optional)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	// Parse 'to' (optional). If only a date is provided, make it end-of-day inclusive.
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	// Validate range if both provided
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}
	runs, err := h.services.RunLog.List(ctx, service.LogFilter{
		From: from,
		To:   to,
		Kind: kind,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("runs_list_failed", "err", err, "from", from, "to", to, "kind", kind)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(runs),
		"runs":  runs,
	})
}

// @Summary      Latest calculation run
// @Tags         runs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/runs/latest [get]
// @Security     BearerAuth
func (h *Handler) getLatestRun(c *gin.Context) {
	run, err := h.services.RunLog.Latest(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load latest run", "runs_latest_failed", err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2026-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
