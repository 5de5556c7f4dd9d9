package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrMissingUserID is returned when the verified token carries no usable
// user identity.
var ErrMissingUserID = errors.New("user_id claim is missing or invalid")

// Service verifies bearer tokens issued by the external identity provider.
// This API never mints tokens itself; it only checks the shared-secret
// signature and reads claims.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// UserIDFromContext extracts the owning user id from verified JWT claims.
// Every repository query is scoped by this id.
func UserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		// some providers put the subject in "sub" instead
		userID, ok = claims["sub"].(string)
		if !ok || userID == "" {
			return "", ErrMissingUserID
		}
	}

	return userID, nil
}
