package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

func HealthCheckHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "healthy",
		"uptime":         time.Since(startTime).String(),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
