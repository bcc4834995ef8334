// Package main: Handler katmanı başlatma.
//
// Handler'lar ince katmandır: HTTP parse + service çağrısı + response.
package main

import (
	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/handlers"
	"github.com/akinalp/parkapp/pkg/i18n"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Password  *handlers.PasswordHandler
	Complaint *handlers.ComplaintHandler
	Park      *handlers.ParkHandler
	Meta      *handlers.MetaHandler
	Stats     *handlers.StatsHandler
	Health    *handlers.HealthHandler
}

// initHandlers, handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(db *database.DB, svcs *Services, repos *Repositories, limiters *RateLimiters, catalog *i18n.Catalog) *Handlers {
	return &Handlers{
		Auth:      handlers.NewAuthHandler(svcs.Auth, svcs.Stats, limiters.Login, limiters.IPs),
		Password:  handlers.NewPasswordHandler(svcs.Password, limiters.Login, limiters.IPs),
		Complaint: handlers.NewComplaintHandler(svcs.Complaint, limiters.Submit, limiters.IPs),
		Park:      handlers.NewParkHandler(svcs.Park),
		Meta:      handlers.NewMetaHandler(catalog),
		Stats:     handlers.NewStatsHandler(repos.Account, svcs.Park),
		Health:    handlers.NewHealthHandler(db),
	}
}
