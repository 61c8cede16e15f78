package controllers

import (
	"runtime"

	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthController reports process and dependency health. It is constructed
// once at startup with a fixed memory threshold and never mutated.
type HealthController struct {
	db             *gorm.DB
	maxMemoryBytes uint64
}

func NewHealthController(db *gorm.DB, maxMemoryMB int64) *HealthController {
	return &HealthController{
		db:             db,
		maxMemoryBytes: uint64(maxMemoryMB) * 1024 * 1024,
	}
}

func (ctl *HealthController) Check(c *fiber.Ctx) error {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	memoryHealthy := memStats.Alloc < ctl.maxMemoryBytes

	dbHealthy := false
	if sqlDB, err := ctl.db.DB(); err == nil {
		dbHealthy = sqlDB.Ping() == nil
	}

	status := fiber.StatusOK
	if !memoryHealthy || !dbHealthy {
		status = fiber.StatusServiceUnavailable
	}

	return middleware.JsonResponse(c, status, memoryHealthy && dbHealthy, "Health check", fiber.Map{
		"memory_healthy":   memoryHealthy,
		"memory_used_mb":   memStats.Alloc / 1024 / 1024,
		"database_healthy": dbHealthy,
	})
}
