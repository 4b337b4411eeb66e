package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/models"
	"github.com/portfolio-backend/repositories"
	"github.com/portfolio-backend/utils"
)

// Login authenticates the admin account and returns a token
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	userRepo := repositories.NewUserRepository()

	user, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, errors.New("invalid email or password")
	}

	token, expiresAt, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUser retrieves a user by ID
func GetUser(id uint) (*models.User, error) {
	userRepo := repositories.NewUserRepository()
	user, err := userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uint, email string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
