package jwt

import (
	"context"
	"net/http"

	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/resp"
)

// Define Context Key for storing the Payload struct, preventing key collisions with other packages.
type contextKey string

const (
	// ContextAuthPayloadKey is the key used to store the parsed jwt.Payload (user identity) in the request Context.
	ContextAuthPayloadKey contextKey = "auth_payload"
)

// RequireAuth validates the session cookie and injects the Payload into the request
// Context. Requests without a cookie, with an expired token, or with an otherwise
// invalid token are rejected with distinct error codes before reaching the handler.
func RequireAuth(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrMissingToken))
				return
			}

			payload, err := ParseToken(cookie.Value, secretKey)
			if err != nil {
				if IsExpired(err) {
					resp.RespondError(w, r, errs.NewError(errs.ErrTokenExpired))
					return
				}

				logx.Warn("Rejected request with invalid session token", "error", err)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidToken))
				return
			}

			ctx := context.WithValue(r.Context(), ContextAuthPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPayloadFromContext safely extracts the authenticated Payload from the request Context.
// A nil return means the request did not pass through RequireAuth.
func GetPayloadFromContext(r *http.Request) *Payload {
	payload, ok := r.Context().Value(ContextAuthPayloadKey).(*Payload)

	if !ok {
		return nil
	}

	return payload
}
