package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports the state of the API and its backing stores. Postgres holds
// the expedientes, so losing it makes the service unavailable (503). Redis
// only caches the catalogs and listings fall back to the database, so a Redis
// outage is reported as degraded but keeps the service up.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "conectado"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "error"
		}

		cache := "conectado"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			cache = "degradado"
		}

		status := http.StatusOK
		if postgres != "conectado" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"servicio": "aguanueva",
			"postgres": postgres,
			"redis":    cache,
		})
	}
}
