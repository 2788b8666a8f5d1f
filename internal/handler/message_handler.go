/*
Package handler provides HTTP handler functions for the direct-messaging API:
the contact sidebar, conversation history, and the send flow that feeds the
realtime delivery core.
*/
package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"dmchat/internal/app/chat"
	"dmchat/internal/app/db"
	"dmchat/internal/app/storage"
	"dmchat/internal/app/user"
	"dmchat/internal/pkg/auth/jwt"
	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/req"
	"dmchat/internal/pkg/resp"
)

// HandleListUsers returns every registered user except the caller, for the
// contact sidebar.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var selfUUID pgtype.UUID
		if err := selfUUID.Scan(identity.UserID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		dbUsers, err := deps.DB.ListUsersExcept(r.Context(), selfUUID)
		if err != nil {
			logx.Error(err, "failed to list users", "user_id", identity.UserID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		users := make([]user.User, 0, len(dbUsers))
		for _, u := range dbUsers {
			users = append(users, toUser(u))
		}

		resp.RespondSuccess(w, r, map[string]any{
			"users": users,
		})
	}
}

// HandleGetConversation returns the full message history between the caller and
// the user named in the URL, ordered by creation time ascending. This is the
// pull-based catch-up path for messages that were never delivered in real time.
func HandleGetConversation(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		otherID := chi.URLParam(r, "id")
		if _, err := uuid.Parse(otherID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidRecipient))
			return
		}

		var selfUUID, otherUUID pgtype.UUID
		if err := selfUUID.Scan(identity.UserID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}
		if err := otherUUID.Scan(otherID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidRecipient))
			return
		}

		dbMessages, err := deps.DB.ListConversation(r.Context(), db.ListConversationParams{
			UserA: selfUUID,
			UserB: otherUUID,
		})
		if err != nil {
			logx.Error(err, "failed to list conversation", "user_id", identity.UserID, "other_id", otherID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		messages := make([]chat.Message, 0, len(dbMessages))
		for _, m := range dbMessages {
			messages = append(messages, toMessage(m))
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
		})
	}
}

type SendMessageInput struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// HandleSendMessage runs the strictly ordered send flow: validate, upload the
// optional image, persist, then hand the stored message to the realtime router.
// The sender learns whether persistence succeeded; realtime delivery is
// best-effort and never reported.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		// Content validation comes first: no side effects for an empty message.
		if customErr := chat.ValidateContent(input.Text, input.Image != ""); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		// A malformed recipient id is a distinct failure from missing content.
		receiverID := chi.URLParam(r, "id")
		if _, err := uuid.Parse(receiverID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidRecipient))
			return
		}

		var senderUUID, receiverUUID pgtype.UUID
		if err := senderUUID.Scan(identity.UserID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}
		if err := receiverUUID.Scan(receiverID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidRecipient))
			return
		}

		if _, err := deps.DB.GetUserByID(r.Context(), receiverUUID); err != nil {
			if db.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrRecipientNotFound))
				return
			}
			logx.Error(err, "failed to resolve recipient", "receiver_id", receiverID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		// Upload before persistence; an upload failure aborts the whole send.
		var imageURL pgtype.Text
		if input.Image != "" {
			img, customErr := storage.ParseImageDataURI(input.Image)
			if customErr != nil {
				resp.RespondError(w, r, customErr)
				return
			}

			key := fmt.Sprintf("messages/%s%s", uuid.New().String(), img.Ext)

			publicURL, err := deps.Storage.Upload(r.Context(), key, img.Bytes, img.ContentType)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUploadFailed))
				return
			}

			imageURL = pgtype.Text{String: publicURL, Valid: true}
		}

		var text pgtype.Text
		if input.Text != "" {
			text = pgtype.Text{String: input.Text, Valid: true}
		}

		dbMessage, err := deps.DB.CreateMessage(r.Context(), db.CreateMessageParams{
			SenderID:   senderUUID,
			ReceiverID: receiverUUID,
			Text:       text,
			ImageUrl:   imageURL,
		})
		if err != nil {
			logx.Error(err, "failed to persist message", "sender_id", identity.UserID, "receiver_id", receiverID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		// Persistence is confirmed; only now may the message be routed.
		message := toMessage(dbMessage)
		deps.Hub.Route(message)

		resp.RespondCreated(w, r, map[string]any{
			"message": message,
		})
	}
}
