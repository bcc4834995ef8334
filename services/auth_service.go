// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturur. Service'ler
// http.Request bilmez, doğrudan SQL çalıştırmaz; domain modelleri alıp
// verir ve hataları pkg sentinel'leri ile sarar.
package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AuthService, hesap oluşturma, kimlik doğrulama ve token yönetimi.
type AuthService interface {
	// Register, role=user hesabı açar ve oturum başlatır.
	Register(ctx context.Context, req *models.RegisterRequest) (*AuthTokens, error)
	// RegisterAdmin, birime bağlı yetkili hesabı açar. HTTP'ye açık değildir;
	// sadece cmd/create-admin ve başlangıç seed'i kullanır.
	RegisterAdmin(ctx context.Context, req *models.RegisterAdminRequest) (*models.Account, error)
	// Authenticate, email/şifre çiftini doğrular.
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
	Login(ctx context.Context, req *models.LoginRequest) (*AuthTokens, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	// SeedAdmins, her birim için posta kutusu adresiyle yetkili hesabı
	// oluşturur. Var olan hesaplara dokunmaz; oluşturulan sayıyı döner.
	SeedAdmins(ctx context.Context, password string) (int, error)
}

// AuthTokens, login/register sonrası dönen token çifti.
type AuthTokens struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int            `json:"expires_in"` // access token ömrü, saniye
	Account      models.Account `json:"account"`
}

// AuthOptions, AuthService ayarları.
type AuthOptions struct {
	JWTSecret         string
	AccessExpiry      time.Duration
	RefreshExpiry     time.Duration
	MinPasswordLength int
	BcryptCost        int
}

type authService struct {
	db          *sql.DB
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	opts        AuthOptions
	passwords   passwordPolicy
	jwtSecret   []byte
	log         zerolog.Logger
}

// NewAuthService, constructor.
// db, SeedAdmins'in tüm birimleri tek transaction'da yazması için gerekir.
func NewAuthService(
	db *sql.DB,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	opts AuthOptions,
) AuthService {
	return &authService{
		db:          db,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		opts:        opts,
		passwords:   newPasswordPolicy(opts.MinPasswordLength, opts.BcryptCost),
		jwtSecret:   []byte(opts.JWTSecret),
		log:         logger.For("auth"),
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*AuthTokens, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := models.NewUserAccount(req.Email, req.Name, hash)
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	s.log.Info().Str("account_id", account.ID).Msg("account registered")
	return s.generateTokens(ctx, account)
}

func (s *authService) RegisterAdmin(ctx context.Context, req *models.RegisterAdminRequest) (*models.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	account, err := s.newAdmin(req)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("department", string(req.Department)).Msg("admin registered")
	account.PasswordHash = ""
	return account, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	account.PasswordHash = ""
	return account, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*AuthTokens, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	account, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.generateTokens(ctx, account)
}

// RefreshToken, refresh token'ı tek kullanımlık olarak tüketir ve yeni çift üretir.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := s.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("%w: refresh token expired", pkg.ErrUnauthorized)
	}

	account, err := s.accountRepo.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	return s.generateTokens(ctx, account)
}

// Logout, refresh token'ın oturumunu siler. Bilinmeyen token hata değildir.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.sessionRepo.DeleteByID(ctx, session.ID)
}

func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid || claims.AccountID == "" {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	return claims, nil
}

func (s *authService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}

func (s *authService) SeedAdmins(ctx context.Context, password string) (int, error) {
	if err := s.checkPassword(password); err != nil {
		return 0, err
	}

	created := 0
	seed := func(repo repository.AccountRepository) error {
		for _, dept := range models.Departments() {
			_, err := repo.GetByEmail(ctx, dept.Mailbox())
			if err == nil {
				continue
			}
			if !errors.Is(err, pkg.ErrNotFound) {
				return err
			}

			account, err := s.newAdmin(&models.RegisterAdminRequest{
				RegisterRequest: models.RegisterRequest{
					Email:    dept.Mailbox(),
					Password: password,
					Name:     dept.String(),
				},
				Department: dept,
			})
			if err != nil {
				return err
			}
			if err := repo.Create(ctx, account); err != nil {
				return err
			}
			created++
		}
		return nil
	}

	var err error
	if s.db != nil {
		err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			return seed(repository.NewSQLiteAccountRepo(tx))
		})
	} else {
		err = seed(s.accountRepo)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to seed admins: %w", err)
	}

	if created > 0 {
		s.log.Info().Int("created", created).Msg("department admins seeded")
	}
	return created, nil
}

// ─── Private Helpers ───

func (s *authService) newAdmin(req *models.RegisterAdminRequest) (*models.Account, error) {
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account, err := models.NewAdminAccount(req.Email, req.Name, hash, req.Department)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return account, nil
}

func (s *authService) checkPassword(password string) error {
	return s.passwords.check(password)
}

func (s *authService) hashPassword(password string) (string, error) {
	return s.passwords.hash(password)
}

func (s *authService) generateTokens(ctx context.Context, account *models.Account) (*AuthTokens, error) {
	now := time.Now()

	claims := &models.TokenClaims{
		AccountID: account.ID,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "parkapp",
		},
	}
	if dept, ok := account.AdminDepartment(); ok {
		claims.Department = string(dept)
	}

	accessString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshBytes := make([]byte, 32)
	if _, err := rand.Read(refreshBytes); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshString := hex.EncodeToString(refreshBytes)

	session := &models.Session{
		AccountID:    account.ID,
		RefreshToken: refreshString,
		ExpiresAt:    now.Add(s.opts.RefreshExpiry),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	account.PasswordHash = ""

	return &AuthTokens{
		AccessToken:  accessString,
		RefreshToken: refreshString,
		ExpiresIn:    int(s.opts.AccessExpiry.Seconds()),
		Account:      *account,
	}, nil
}
