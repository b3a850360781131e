package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/models"
	"github.com/tradegate/marketplace-backend/internal/principal"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("email and password are required")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, invalid("name, email and password are required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role != models.RoleBuyer && role != models.RoleSeller {
		return nil, invalid("role must be buyer or seller")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		Password:     string(hash),
		Role:         role,
		CompanyName:  req.CompanyName,
		Country:      req.Country,
		MobileNumber: req.MobileNumber,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The pre-check cannot see rows created concurrently, or
		// soft-deleted accounts still holding the email in the unique
		// index; the violation surfaces here instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(&user)}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	// Unknown email and wrong password produce the same error so the
	// response never reveals which emails are registered.
	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(&user)}, nil
}

func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *AuthService) UpdateProfile(id uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalid("name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.MobileNumber != nil {
		user.MobileNumber = *req.MobileNumber
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// GenerateToken signs a session token carrying the user's id and role.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := principal.Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken parses and verifies a session token. Any failure (bad
// signature, expiry, malformed input) yields nil: an invalid token is
// equivalent to no token. The cause is logged, never surfaced.
func (s *AuthService) VerifyToken(raw string) *principal.Principal {
	token, err := jwt.ParseWithClaims(raw, &principal.Claims{}, principal.KeyFunc(s.cfg.JWTSecret))
	if err != nil || !token.Valid {
		slog.Debug("token verification failed", "error", err)
		return nil
	}

	claims, ok := token.Claims.(*principal.Claims)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}

	return &principal.Principal{ID: id, Role: claims.Role}
}
