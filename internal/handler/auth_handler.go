/*
Package handler provides HTTP handler functions for user authentication and management.
*/
package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/bcrypt"

	"dmchat/internal/app/db"
	"dmchat/internal/app/storage"
	"dmchat/internal/pkg/auth/jwt"
	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/req"
	"dmchat/internal/pkg/resp"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// MinPasswordLength is the minimum number of characters in an account password.
const MinPasswordLength = 8

type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister processes the request to create a new user account.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.FullName = strings.TrimSpace(input.FullName)
		if input.FullName == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidFullName))
			return
		}

		if !emailRegex.MatchString(input.Email) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidEmail))
			return
		}

		if utf8.RuneCountInString(input.Password) < MinPasswordLength {
			resp.RespondError(w, r, errs.NewError(errs.ErrPasswordTooShort))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		dbUser, err := deps.DB.CreateUser(r.Context(), db.CreateUserParams{
			FullName:     input.FullName,
			Email:        strings.ToLower(input.Email),
			PasswordHash: string(hashedPassword),
		})

		if err != nil {
			if db.IsUniqueViolation(err) {
				logx.Warn("registration conflict: email already registered", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserAlreadyExists))
				return
			}

			logx.Error(err, "failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if customErr := issueSession(w, deps, dbUser); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondCreated(w, r, map[string]any{
			"user": toUser(dbUser),
		})
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies user credentials and issues a session cookie.
// Unknown emails and wrong passwords produce the same error.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Email == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		dbUser, err := deps.DB.GetUserByEmail(r.Context(), strings.ToLower(input.Email))
		if err != nil {
			logx.Warn("login: user fetch failed", "email", input.Email, "error", err)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if customErr := issueSession(w, deps, dbUser); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": toUser(dbUser),
		})
	}
}

// HandleLogout clears the session cookie.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwt.ClearSessionCookie(w, deps.Config.Environment == "development")

		resp.RespondSuccess(w, r, map[string]any{
			"message": "Logged out",
		})
	}
}

// HandleGetProfile retrieves the current authenticated user's profile.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var userUUID pgtype.UUID
		if err := userUUID.Scan(identity.UserID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		dbUser, err := deps.DB.GetUserByID(r.Context(), userUUID)
		if err != nil {
			logx.Warn("get_profile: user not found", "id", identity.UserID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": toUser(dbUser),
		})
	}
}

type UpdateProfilePicInput struct {
	Image string `json:"image"`
}

// HandleUpdateProfilePic uploads a new profile picture (submitted as a base64
// data URI) to the asset host and persists its public URL.
func HandleUpdateProfilePic(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input UpdateProfilePicInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Image == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		img, customErr := storage.ParseImageDataURI(input.Image)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		key := fmt.Sprintf("avatars/%s%s", uuid.New().String(), img.Ext)

		publicURL, err := deps.Storage.Upload(r.Context(), key, img.Bytes, img.ContentType)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUploadFailed))
			return
		}

		var userUUID pgtype.UUID
		if err := userUUID.Scan(identity.UserID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		dbUser, err := deps.DB.UpdateUserProfilePic(r.Context(), db.UpdateUserProfilePicParams{
			ID:            userUUID,
			ProfilePicUrl: pgtype.Text{String: publicURL, Valid: true},
		})
		if err != nil {
			logx.Error(err, "failed to update profile picture", "user_id", identity.UserID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": toUser(dbUser),
		})
	}
}

// issueSession generates a session token for the user and attaches it as a cookie.
func issueSession(w http.ResponseWriter, deps *AppDeps, dbUser db.User) *errs.CustomError {
	payload := &jwt.Payload{
		UserID:   dbUser.ID.String(),
		FullName: dbUser.FullName,
	}

	tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
	if err != nil {
		logx.Error(err, "failed to generate session token", "user_id", payload.UserID)
		return errs.NewError(errs.ErrUnknown)
	}

	jwt.SetSessionCookie(w, tokenString, deps.Config.Environment == "development")
	return nil
}
