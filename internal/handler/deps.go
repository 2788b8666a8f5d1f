package handler

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"dmchat/internal/app/chat"
	"dmchat/internal/app/db"
	"dmchat/internal/app/storage"
	"dmchat/internal/app/user"
	"dmchat/internal/configs"
)

// Store is the persistence gateway surface the handlers depend on. *db.Store
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	GetUserByID(ctx context.Context, id pgtype.UUID) (db.User, error)
	ListUsersExcept(ctx context.Context, id pgtype.UUID) ([]db.User, error)
	UpdateUserProfilePic(ctx context.Context, arg db.UpdateUserProfilePicParams) (db.User, error)
	CreateMessage(ctx context.Context, arg db.CreateMessageParams) (db.Message, error)
	ListConversation(ctx context.Context, arg db.ListConversationParams) ([]db.Message, error)
}

// AppDeps bundles the collaborators every handler needs.
type AppDeps struct {
	Hub       *chat.Hub
	Transport *chat.SocketTransport
	Config    *configs.AppConfig
	Storage   storage.StorageService
	DB        Store
}

// toUser converts a database row into the public user shape.
func toUser(u db.User) user.User {
	return user.User{
		ID:         u.ID.String(),
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePicUrl.String,
	}
}

// toMessage converts a database row into the message shape shared by HTTP
// responses and realtime pushes.
func toMessage(m db.Message) chat.Message {
	return chat.Message{
		ID:         m.ID.String(),
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		Text:       m.Text.String,
		Image:      m.ImageUrl.String,
		CreatedAt:  m.CreatedAt.Time.Format(time.RFC3339),
	}
}
