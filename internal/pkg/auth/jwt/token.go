package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// SessionExpiration defines the lifetime of a user session token.
	SessionExpiration = 1 * time.Hour

	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "DMChat-Server"

	// SessionCookieName is the name of the httpOnly cookie carrying the session token.
	SessionCookieName = "jwt"
)

// GenerateToken creates and signs a new JWT Token string based on the provided Payload struct.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken parses and validates the JWT Token string using the provided secretKey.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

// IsExpired reports whether the given parse error stems from an expired token,
// so the middleware can distinguish "sign in again" from "invalid token".
func IsExpired(err error) bool {
	var validationErr *jwt.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Errors&jwt.ValidationErrorExpired != 0
	}
	return false
}

// SetSessionCookie attaches the session token to the response as an httpOnly,
// SameSite=Strict cookie. The Secure flag is set outside development so the
// cookie only travels over HTTPS.
func SetSessionCookie(w http.ResponseWriter, tokenString string, isDevelopment bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(SessionExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   !isDevelopment,
	})
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(w http.ResponseWriter, isDevelopment bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   !isDevelopment,
	})
}
