package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/eventlog"
	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

// EventCapture records usage events for the routes declared in the eventlog
// route table. Capture happens after the handler and only for successful
// responses; a failed request is not usage. Search routes only record the
// first page so pagination through one result set counts once.
func EventCapture(pipeline *eventlog.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		meta, ok := eventlog.LookupRoute(c.Request.Method, c.FullPath())
		if !ok {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}
		if meta.Category == eventlog.CategorySearch && !utils.IsFirstPage(c) {
			return
		}

		userID := CallerID(c)
		schema := c.GetString(constants.ContextKeyTenantSchema)
		if userID == 0 || schema == "" {
			return
		}

		var props map[string]any
		for _, p := range meta.CaptureParams {
			if v := c.Query(p); v != "" {
				if props == nil {
					props = make(map[string]any, len(meta.CaptureParams))
				}
				props[p] = v
			}
		}

		ev := eventlog.CapturedEvent{
			Schema:     schema,
			UserID:     userID,
			UserRole:   c.GetString(constants.ContextKeyUserRole),
			EventName:  meta.EventName,
			Category:   meta.Category,
			Properties: props,
		}
		if meta.Category == eventlog.CategorySearch {
			ev.SearchQuery = c.Query("search")
		}
		pipeline.Capture(ev)
	}
}
