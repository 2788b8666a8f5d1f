package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for the chat server.
// It includes standard claims required by the JWT specification and the custom claims
// necessary for identifying the authenticated user.
type Payload struct {
	// StandardClaims embeds the necessary JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer). These are crucial for token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// UserID is the database-assigned identifier of the authenticated user.
	UserID string `json:"user_id"`

	// FullName is the user's display name, carried so the realtime layer can label
	// connections without a database round trip.
	FullName string `json:"full_name"`
}
