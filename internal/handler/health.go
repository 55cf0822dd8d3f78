package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 3 * time.Second

// Health pings Postgres and Redis and reports per-dependency status. The
// booking path only needs the database; a Redis outage degrades the mirror
// queue without taking reservations down, so the payload keeps the two
// dependencies separate.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		healthy := true

		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "down"
			healthy = false
		}

		redisStatus := "ok"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "down"
			healthy = false
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":    healthy,
			"db":    dbStatus,
			"redis": redisStatus,
		})
	}
}
