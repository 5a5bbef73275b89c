package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authrepo "github.com/annolab/tenselab-backend/internal/data/repos/auth"
	userrepo "github.com/annolab/tenselab-backend/internal/data/repos/user"
	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/requestdata"
	"github.com/annolab/tenselab-backend/internal/session"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so
// the response does not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) error
	LoginUser(ctx context.Context, email, password string) (string, string, *types.User, error)
	RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      userrepo.UserRepo
	userTokenRepo authrepo.UserTokenRepo
	sessions      *session.Manager
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo userrepo.UserRepo,
	userTokenRepo authrepo.UserTokenRepo,
	sessions *session.Manager,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		sessions:      sessions,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) GetAccessTTL() time.Duration { return as.accessTTL }

// RegisterUser creates an annotator account. Admin accounts are not
// self-service; they are promoted directly in the user table.
func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)

	if user.Email == "" {
		return fmt.Errorf("an email is required to register")
	}
	if len(user.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return fmt.Errorf("check user email: %w", err)
	}
	if exists {
		return fmt.Errorf("email is already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)
	user.ID = uuid.New()
	user.Role = types.RoleAnnotator

	if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// LoginUser verifies credentials, resolves the account role, issues a
// token pair and starts a fresh annotation session. The role is baked
// into the access token here, so a role change is only observed at the
// next login.
func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, *types.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", "", nil, ErrInvalidCredentials
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", nil, fmt.Errorf("retrieve user by email: %w", err)
	}
	if len(users) == 0 {
		return "", "", nil, ErrInvalidCredentials
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	var accessToken, refreshToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); err != nil {
			return fmt.Errorf("clear previous tokens: %w", err)
		}

		tok, err := as.generateAccessToken(user)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		accessToken = tok
		refreshToken = uuid.New().String()

		userToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); err != nil {
			return fmt.Errorf("create user token: %w", err)
		}
		return nil
	}); err != nil {
		return "", "", nil, err
	}

	as.sessions.Create(user.ID, user.Role)
	return accessToken, refreshToken, user, nil
}

func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", fmt.Errorf("refresh token is required")
	}

	var accessToken, newRefreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := as.userTokenRepo.GetByRefreshTokens(ctx, tx, []string{refreshToken})
		if err != nil {
			return fmt.Errorf("fetch refresh token: %w", err)
		}
		if len(found) == 0 {
			return fmt.Errorf("unknown refresh token")
		}
		existing := found[0]
		if existing.ExpiresAt.Before(time.Now()) {
			if err := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{existing.UserID}); err != nil {
				return fmt.Errorf("delete expired token: %w", err)
			}
			return fmt.Errorf("refresh token expired")
		}

		users, err := as.userRepo.GetByIDs(ctx, tx, []uuid.UUID{existing.UserID})
		if err != nil {
			return fmt.Errorf("load user for refresh: %w", err)
		}
		if len(users) == 0 {
			return fmt.Errorf("no user for refresh token")
		}
		user := users[0]

		tok, err := as.generateAccessToken(user)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()

		if err := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); err != nil {
			return fmt.Errorf("rotate token: %w", err)
		}
		userToken := types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); err != nil {
			return fmt.Errorf("create user token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

// LogoutUser deletes the caller's tokens and tears down their session,
// dropping any loaded worklist with it.
func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return fmt.Errorf("no authenticated user in context")
	}
	if err := as.userTokenRepo.DeleteByUserIDs(ctx, nil, []uuid.UUID{rd.UserID}); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}
	as.sessions.Destroy(rd.UserID)
	return nil
}

// SetContextFromToken validates the access token and attaches the caller
// identity and role to the request context.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("invalid token claims")
	}
	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ctx, fmt.Errorf("invalid user_id claim")
	}
	roleStr, _ := claims["role"].(string)
	role, err := types.ParseRole(roleStr)
	if err != nil {
		return ctx, fmt.Errorf("invalid role claim")
	}

	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		Role:        role,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
