package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/zorguiala/domdom/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports readiness of the store and the job queue. The payload stays
// coarse on purpose: component states plus the email queue backlog, nothing
// that leaks connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		database := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			database = "down"
		}

		// LLen doubles as the Redis liveness probe.
		queue := "up"
		var backlog int64
		if n, err := rdb.LLen(ctx, worker.QueueEmail).Result(); err != nil {
			queue = "down"
		} else {
			backlog = n
		}

		code := http.StatusOK
		status := "ok"
		if database == "down" || queue == "down" {
			code = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(code, gin.H{
			"status":        status,
			"database":      database,
			"queue":         queue,
			"email_backlog": backlog,
		})
	}
}
