// Package models, uygulamanın domain modellerini tanımlar.
//
// json tag'leri API response'larında field isimlerini belirler;
// `json:"-"` olan alanlar (ör: PasswordHash) API'ye hiç çıkmaz.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Role, hesabın tipi.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// emailRegex, basit email format kontrolü.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AccountStats, hesap başına best-effort sayaçlar.
type AccountStats struct {
	ComplaintsFiled    int `json:"complaints_filed"`
	ParksVisited       int `json:"parks_visited"`
	ComplaintsResolved int `json:"complaints_resolved"`
}

// Stat, artırılabilir sayaç adı. Değerler accounts tablosundaki kolon isimleridir.
type Stat string

const (
	StatComplaintsFiled    Stat = "complaints_filed"
	StatParksVisited       Stat = "parks_visited"
	StatComplaintsResolved Stat = "complaints_resolved"
)

// Valid, sayaç adının bilinen üç kolondan biri olduğunu kontrol eder.
func (s Stat) Valid() bool {
	switch s {
	case StatComplaintsFiled, StatParksVisited, StatComplaintsResolved:
		return true
	}
	return false
}

// Account, bir vatandaş (user) veya birim yetkilisi (admin) hesabı.
//
// Kural: Role == admin ⇔ Department dolu. Tutarlı bir Account oluşturmanın
// yolu NewUserAccount / NewAdminAccount'tur; DB tarafında da aynı kural
// CHECK constraint ile zorlanır.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Department   *Department  `json:"department,omitempty"`
	PasswordHash string       `json:"-"`
	Stats        AccountStats `json:"stats"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewUserAccount, birimi olmayan vatandaş hesabı oluşturur.
func NewUserAccount(email, name, passwordHash string) *Account {
	return &Account{
		Email:        email,
		Name:         name,
		Role:         RoleUser,
		PasswordHash: passwordHash,
	}
}

// NewAdminAccount, tek bir birime bağlı yetkili hesabı oluşturur.
func NewAdminAccount(email, name, passwordHash string, dept Department) (*Account, error) {
	if !dept.Valid() {
		return nil, fmt.Errorf("unknown department %q", dept)
	}
	return &Account{
		Email:        email,
		Name:         name,
		Role:         RoleAdmin,
		Department:   &dept,
		PasswordHash: passwordHash,
	}, nil
}

// IsAdmin, hesabın birim yetkilisi olup olmadığını döner.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// AdminDepartment, admin hesabının birimini döner. User hesabında ok=false.
func (a *Account) AdminDepartment() (Department, bool) {
	if a.Role != RoleAdmin || a.Department == nil {
		return "", false
	}
	return *a.Department, true
}

// Validate, role ⇔ department kuralını kontrol eder.
func (a *Account) Validate() error {
	switch a.Role {
	case RoleAdmin:
		if a.Department == nil || !a.Department.Valid() {
			return fmt.Errorf("admin account requires a valid department")
		}
	case RoleUser:
		if a.Department != nil {
			return fmt.Errorf("user account cannot have a department")
		}
	default:
		return fmt.Errorf("unknown role %q", a.Role)
	}
	return nil
}

// RegisterRequest, kayıt olurken client'tan gelen veri.
// PasswordHash yerine Password alınır; hash'leme service katmanında yapılır.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate, alanları normalize eder ve boş/geçersiz değerleri reddeder.
// Şifre uzunluğu burada değil, service'te (ErrWeakPassword) kontrol edilir.
func (r *RegisterRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)

	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if utf8.RuneCountInString(r.Name) > 64 {
		return fmt.Errorf("name must be at most 64 characters")
	}
	return nil
}

// RegisterAdminRequest, birim yetkilisi oluşturma isteği (sadece CLI ve seed).
type RegisterAdminRequest struct {
	RegisterRequest
	Department Department `json:"department"`
}

// Validate, RegisterRequest kurallarına ek olarak birimi kontrol eder.
func (r *RegisterAdminRequest) Validate() error {
	if err := r.RegisterRequest.Validate(); err != nil {
		return err
	}
	if !r.Department.Valid() {
		return fmt.Errorf("unknown department %q", r.Department)
	}
	return nil
}

// LoginRequest, giriş isteği.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
