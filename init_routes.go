// Package main: HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları:
//   - auth: JWT zorunlu
//   - optional: JWT varsa hesap context'e eklenir
//   - authAdmin: auth + birim yetkilisi
package main

import (
	"net/http"

	"github.com/akinalp/parkapp/middleware"
	"github.com/akinalp/parkapp/services"
)

// initRoutes, middleware chain'i kurar ve endpoint'leri mux'a bağlar.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)
	adminMw := middleware.NewAdminMiddleware()

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(handler)
	}
	optional := func(handler http.HandlerFunc) http.Handler {
		return authMw.Optional(handler)
	}
	authAdmin := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(adminMw.Require(handler))
	}

	// Health
	mux.HandleFunc("GET /api/health", h.Health.Check)

	// Accounts & auth
	mux.HandleFunc("POST /api/accounts", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.Handle("POST /api/auth/logout", auth(h.Auth.Logout))
	mux.HandleFunc("POST /api/auth/forgot-password", h.Password.ForgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", h.Password.ResetPassword)

	// User
	mux.Handle("GET /api/users/me", auth(h.Auth.Me))
	mux.Handle("GET /api/users/me/stats", auth(h.Auth.MyStats))
	mux.Handle("POST /api/users/me/password", auth(h.Password.ChangePassword))

	// Sabit listeler
	mux.HandleFunc("GET /api/departments", h.Meta.Departments)
	mux.HandleFunc("GET /api/issue-types", h.Meta.IssueTypes)
	mux.HandleFunc("GET /api/statuses", h.Meta.Statuses)

	// Parks
	mux.HandleFunc("GET /api/parks", h.Park.List)
	mux.Handle("GET /api/parks/{id}", optional(h.Park.Get))

	// Complaints
	mux.Handle("POST /api/complaints", optional(h.Complaint.Create))
	mux.Handle("GET /api/complaints", auth(h.Complaint.List))
	mux.Handle("GET /api/complaints/summary", authAdmin(h.Complaint.Summary))
	mux.Handle("GET /api/complaints/{id}", auth(h.Complaint.Get))
	mux.Handle("PATCH /api/complaints/{id}/status", authAdmin(h.Complaint.UpdateStatus))

	// Public stats
	mux.HandleFunc("GET /api/stats", h.Stats.GetPublicStats)
}
