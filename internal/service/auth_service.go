package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
)

// Common auth errors.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSessionAlreadyActive = errors.New("another session is already active, please contact admin to reset")
)

// Claims extends JWT standard claims with app-specific fields.
// ProfileID is the student/staff/parent row for the role; zero for
// admin and management accounts, which have no profile table.
type Claims struct {
	jwt.RegisteredClaims
	Role      model.Role `json:"role"`
	UserID    int        `json:"user_id"`
	ProfileID int        `json:"profile_id,omitempty"`
}

// AuthService handles authentication, JWT, and session management.
// Student logins are single-device: a second login is rejected until
// the session is reset or expires.
type AuthService struct {
	cfg      *config.Config
	rdb      *redis.Client
	users    *repository.UserRepository
	students *repository.StudentRepository
	staff    *repository.StaffRepository
	parents  *repository.ParentRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	cfg *config.Config,
	rdb *redis.Client,
	users *repository.UserRepository,
	students *repository.StudentRepository,
	staff *repository.StaffRepository,
	parents *repository.ParentRepository,
) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb, users: users, students: students, staff: staff, parents: parents}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies credentials and issues a token carrying the account's
// role and profile id.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, err
	}

	profileID, err := s.profileID(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(ctx, user, profileID)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{Token: token, User: *user}, nil
}

// profileID resolves the role-specific profile row for the account.
func (s *AuthService) profileID(ctx context.Context, user *model.User) (int, error) {
	var id int
	var err error
	switch user.Role {
	case model.RoleStudent:
		var st *model.Student
		if st, err = s.students.GetByUserID(ctx, user.ID); err == nil {
			id = st.ID
		}
	case model.RoleStaff:
		var sf *model.Staff
		if sf, err = s.staff.GetByUserID(ctx, user.ID); err == nil {
			id = sf.ID
		}
	case model.RoleParent:
		var p *model.Parent
		if p, err = s.parents.GetByUserID(ctx, user.ID); err == nil {
			id = p.ID
		}
	default:
		return 0, nil
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNoProfile
		}
		return 0, err
	}
	return id, nil
}

// generateToken creates a signed JWT. Student tokens register a
// single-device session in Redis and are rejected while one is active.
func (s *AuthService) generateToken(ctx context.Context, user *model.User, profileID int) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	if user.Role == model.RoleStudent {
		sessionKey := config.CacheKey.StudentSessionKey(user.ID)
		existing, err := s.rdb.Get(ctx, sessionKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("check session: %w", err)
		}
		if existing != "" {
			return "", ErrSessionAlreadyActive
		}
		if err := s.rdb.Set(ctx, sessionKey, jti, s.cfg.JWTExpiry).Err(); err != nil {
			return "", fmt.Errorf("store session: %w", err)
		}
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Role:      user.Role,
		UserID:    user.ID,
		ProfileID: profileID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ValidateStudentSession checks that the token's JTI matches the active
// session in Redis.
func (s *AuthService) ValidateStudentSession(ctx context.Context, userID int, jti string) error {
	sessionKey := config.CacheKey.StudentSessionKey(userID)
	stored, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errors.New("no active session")
		}
		return fmt.Errorf("check session: %w", err)
	}
	if stored != jti {
		return errors.New("session invalidated")
	}
	return nil
}

// ResetStudentSession removes a student's session from Redis, allowing
// a new login.
func (s *AuthService) ResetStudentSession(ctx context.Context, userID int) error {
	sessionKey := config.CacheKey.StudentSessionKey(userID)
	return s.rdb.Del(ctx, sessionKey).Err()
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.CheckPassword(user.PasswordHash, current); err != nil {
		return err
	}
	hash, err := s.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}
