package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UsersStorage interface {
	Insert(ctx context.Context, username, email string, passwordHash []byte) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	log      *slog.Logger
	storage  UsersStorage
	secret   string
	tokenTTL time.Duration
}

func New(log *slog.Logger, storage UsersStorage, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:      log,
		storage:  storage,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (a *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	const op = "auth.AuthService.Signup"
	log := a.log.With("op", op, "email", email)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	user, err := a.storage.Insert(ctx, username, email, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("user already exists")
			return nil, ErrUserAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "auth.AuthService.Login"
	log := a.log.With("op", op, "email", email)
	user, err := a.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return "", ErrInvalidCredentials
		}
		log.Error(err.Error())
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("password mismatch")
		return "", ErrInvalidCredentials
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": user.ID,
		"exp": time.Now().Add(a.tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(a.secret))
	if err != nil {
		log.Error(err.Error())
		return "", err
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the user id claim.
func (a *AuthService) ParseToken(token string) (int64, error) {
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int64(uid), nil
}

func (a *AuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "auth.AuthService.GetUser"
	log := a.log.With("op", op, "id", id)
	user, err := a.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}
