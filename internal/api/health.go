package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"fr24/spotter/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(cacheDB *gorm.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		// Check the flight cache store
		cacheStatus := "ok"
		cacheDetails := "Flight cache store connected"
		sqlDB, err := cacheDB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			cacheStatus = "down"
			cacheDetails = err.Error()
		}
		services["flight_cache"] = entities.ServiceStatus{
			Status:  cacheStatus,
			Details: cacheDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
