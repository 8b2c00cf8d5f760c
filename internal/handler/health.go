package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// probeTimeout bounds both store pings; load balancers poll this endpoint
// every few seconds, so a hung store must not hang the probe.
const probeTimeout = 3 * time.Second

// Health reports liveness of the API and its two backing stores. Returns 503
// when either store is unreachable so orchestrators stop routing traffic.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
		defer cancel()

		dbOK := false
		if sqlDB, err := db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			dbOK = true
		}
		redisOK := rdb.Ping(ctx).Err() == nil

		status := http.StatusOK
		if !dbOK || !redisOK {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      dbOK && redisOK,
			"service": "product-inventory",
			"db":      probeWord(dbOK),
			"redis":   probeWord(redisOK),
		})
	}
}

func probeWord(ok bool) string {
	if ok {
		return "up"
	}
	return "down"
}
