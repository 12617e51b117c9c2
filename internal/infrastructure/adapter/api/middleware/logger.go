package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logsnack/logsnack/internal/domain/logger"
	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// AccessLog middleware logs incoming requests and their responses through
// the facade. Message construction is guarded so suppressed levels cost
// nothing.
func AccessLog(logs *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		if !logs.Enabled(core.LevelInfo) {
			return
		}

		latency := time.Since(start)
		logs.Info(fmt.Sprintf("%s %s -> %d (%dms) from %s",
			method, path, c.Writer.Status(), latency.Milliseconds(), c.ClientIP()))
	}
}
