package handler

import (
	"context"
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

func HealthHandler(c *gin.Context, client *mongo.Client) {
	mongoStatus := "up"
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "down"
	}

	status := http.StatusOK
	if mongoStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":      mongoStatus,
		"uptime":      time.Since(startTime).String(),
		"cpu_percent": utils.GetCPUUsage(),
	})
}
