package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/enterpriserag/backend/internal/config"
	"github.com/enterpriserag/backend/internal/dto"
	"github.com/enterpriserag/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateAccount   = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// NormalizeEmail is the single normalization applied before every store
// lookup and insert: signup and login must agree on it exactly.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := NormalizeEmail(req.Email)

	// ParseAddress accepts display-name forms like "Bob <bob@example.com>";
	// only a bare address may be stored, so the parsed address must round-trip.
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hash),
		TenantID:       req.TenantID,
		Role:           role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on email closes the race between the lookup
		// above and this insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &dto.SignupResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := NormalizeEmail(req.Email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"tenant_id": user.TenantID,
		"role":      user.Role,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
