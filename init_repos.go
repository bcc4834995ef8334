// Package main: Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// SQLite repository'leri aynı *sql.DB pool'unu paylaşır; park kataloğu
// bellekte tutulur.
package main

import (
	"database/sql"

	"github.com/akinalp/parkapp/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	Account   repository.AccountRepository
	Session   repository.SessionRepository
	Reset     repository.PasswordResetRepository
	Complaint repository.ComplaintRepository
	Park      repository.ParkRepository
}

// initRepositories, veritabanı bağlantısından repository'leri oluşturur.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		Account:   repository.NewSQLiteAccountRepo(conn),
		Session:   repository.NewSQLiteSessionRepo(conn),
		Reset:     repository.NewSQLiteResetTokenRepo(conn),
		Complaint: repository.NewSQLiteComplaintRepo(conn),
		Park:      repository.NewStaticParkRepo(nil),
	}
}
