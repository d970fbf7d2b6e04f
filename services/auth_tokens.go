package services

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/interpark/realty-api/models"
	"gorm.io/gorm"
)

// AuthTokensService issues and verifies the signed tokens used to authenticate REST
// requests. Tokens are HMAC JWTs signed with a server-side pepper.
type AuthTokensService struct {
	DB            *gorm.DB
	SigningPepper string
}

// CreateToken creates a signed token for the user, valid between the two instants
func (s *AuthTokensService) CreateToken(user *models.User, issuedAt, expiresAt time.Time) (string, error) {
	if user == nil {
		return "", errors.New("cannot create token for nil user")
	}
	claims := jwt.StandardClaims{
		Subject:   user.ID,
		IssuedAt:  issuedAt.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningPepper))
}

// VerifyToken verifies a token string and returns the user it belongs to. Returns nil
// (and no error) for tokens that are expired, tampered with, or reference a user that
// no longer exists.
func (s *AuthTokensService) VerifyToken(tokenString string) (*models.User, error) {

	// Parse and validate the token
	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return []byte(s.SigningPepper), nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	// Resolve the user the token was issued for
	var user models.User
	findErr := s.DB.
		Where("deleted_date IS NULL").
		Where("id = ?", claims.Subject).
		First(&user).
		Error
	if findErr != nil {
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, findErr
	}
	return &user, nil

}
