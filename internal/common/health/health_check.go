package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/architect/geometry-tutor/internal/tutor/repository"
	"gorm.io/gorm"
)

// HealthStatus represents the overall health of the application
type HealthStatus struct {
	Status    string                 `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Healthy bool        `json:"healthy"`
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SystemMetrics captures current system metrics
type SystemMetrics struct {
	MemoryUsageMB      uint64  `json:"memory_usage_mb"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
	GoroutineCount     int     `json:"goroutine_count"`
	CPUNumCores        int     `json:"cpu_num_cores"`
	Uptime             int64   `json:"uptime_seconds"`
}

// HealthChecker provides health check functionality. The database is
// optional: it is only checked when the catalog was loaded from one.
type HealthChecker struct {
	db              *gorm.DB
	version         string
	startTime       time.Time
	mu              sync.RWMutex
	lastCheckTime   time.Time
	lastCheckStatus string
}

// NewHealthChecker creates a new health checker. db may be nil.
func NewHealthChecker(db *gorm.DB, version string) *HealthChecker {
	return &HealthChecker{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// Check performs a complete health check
func (hc *HealthChecker) Check() HealthStatus {
	start := time.Now()
	status := HealthStatus{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	allHealthy := true

	// Check catalog
	catalogCheck := hc.checkCatalog()
	status.Checks["catalog"] = catalogCheck
	if !catalogCheck.Healthy {
		allHealthy = false
	}

	// Check database when one backs the catalog
	if hc.db != nil {
		dbCheck := hc.checkDatabase()
		status.Checks["database"] = dbCheck
		if !dbCheck.Healthy {
			allHealthy = false
		}
	}

	// Check memory
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memoryMB := m.Alloc / 1024 / 1024
	status.Checks["memory"] = map[string]interface{}{
		"healthy":      memoryMB < 500,
		"allocated_mb": memoryMB,
		"sys_mb":       m.Sys / 1024 / 1024,
		"num_gc":       m.NumGC,
	}
	if memoryMB >= 500 {
		allHealthy = false
	}

	// Check goroutines
	goroutineCount := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutineCount,
		"healthy": goroutineCount < 10000, // Alert if > 10k goroutines
	}
	if goroutineCount >= 10000 {
		allHealthy = false
	}

	status.Checks["uptime_seconds"] = int64(time.Since(hc.startTime).Seconds())

	if allHealthy {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}

	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastCheckTime = start
	hc.lastCheckStatus = status.Status
	hc.mu.Unlock()

	return status
}

// checkCatalog verifies the concept catalog was loaded and is non-empty
func (hc *HealthChecker) checkCatalog() ComponentHealth {
	cat := repository.ActiveCatalog()
	if cat == nil {
		return ComponentHealth{
			Healthy: false,
			Error:   "catalog not loaded",
		}
	}

	return ComponentHealth{
		Healthy: len(cat.All()) > 0,
		Details: map[string]interface{}{
			"concepts": len(cat.All()),
			"problems": len(cat.Problems()),
		},
	}
}

// checkDatabase verifies database connectivity and latency
func (hc *HealthChecker) checkDatabase() ComponentHealth {
	start := time.Now()

	sqlDB, err := hc.db.DB()
	if err != nil {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return ComponentHealth{
		Healthy: true,
		Details: map[string]interface{}{
			"latency_ms": time.Since(start).Milliseconds(),
			"connection": "connected",
		},
	}
}

// IsHealthy returns true if system is healthy
func (hc *HealthChecker) IsHealthy() bool {
	hc.mu.RLock()
	status := hc.lastCheckStatus
	hc.mu.RUnlock()

	return status == "healthy"
}

// IsReady returns true if system is ready to serve traffic
func (hc *HealthChecker) IsReady() bool {
	if repository.ActiveCatalog() == nil {
		return false
	}

	if hc.db != nil {
		sqlDB, err := hc.db.DB()
		if err != nil {
			return false
		}
		if err := sqlDB.Ping(); err != nil {
			return false
		}
	}

	return true
}

// IsAlive returns true if system is running
func (hc *HealthChecker) IsAlive() bool {
	return true
}

// GetMetrics returns current system metrics
func (hc *HealthChecker) GetMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB:      m.Alloc / 1024 / 1024,
		MemoryUsagePercent: float64(m.Alloc) / float64(m.TotalAlloc) * 100,
		GoroutineCount:     runtime.NumGoroutine(),
		CPUNumCores:        runtime.NumCPU(),
		Uptime:             int64(time.Since(hc.startTime).Seconds()),
	}
}
