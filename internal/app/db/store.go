/*
Package db provides the PostgreSQL persistence gateway: connection pooling,
embedded schema migrations, and the query layer used by the HTTP handlers.
*/
package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a pgx connection pool with the application's queries.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store over the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// User mirrors a row of the users table.
type User struct {
	ID            pgtype.UUID
	FullName      string
	Email         string
	PasswordHash  string
	ProfilePicUrl pgtype.Text
	CreatedAt     pgtype.Timestamptz
}

// Message mirrors a row of the messages table.
type Message struct {
	ID         pgtype.UUID
	SenderID   pgtype.UUID
	ReceiverID pgtype.UUID
	Text       pgtype.Text
	ImageUrl   pgtype.Text
	CreatedAt  pgtype.Timestamptz
}

const createUser = `
INSERT INTO users (full_name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, full_name, email, password_hash, profile_pic_url, created_at
`

type CreateUserParams struct {
	FullName     string
	Email        string
	PasswordHash string
}

// CreateUser inserts a new account. A duplicate email surfaces as a unique
// violation (see IsUniqueViolation).
func (s *Store) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := s.pool.QueryRow(ctx, createUser, arg.FullName, arg.Email, arg.PasswordHash)

	var u User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.ProfilePicUrl, &u.CreatedAt)
	return u, err
}

const getUserByEmail = `
SELECT id, full_name, email, password_hash, profile_pic_url, created_at
FROM users
WHERE email = $1
`

// GetUserByEmail fetches the account registered under the given email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := s.pool.QueryRow(ctx, getUserByEmail, email)

	var u User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.ProfilePicUrl, &u.CreatedAt)
	return u, err
}

const getUserByID = `
SELECT id, full_name, email, password_hash, profile_pic_url, created_at
FROM users
WHERE id = $1
`

// GetUserByID fetches an account by its identifier.
func (s *Store) GetUserByID(ctx context.Context, id pgtype.UUID) (User, error) {
	row := s.pool.QueryRow(ctx, getUserByID, id)

	var u User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.ProfilePicUrl, &u.CreatedAt)
	return u, err
}

const listUsersExcept = `
SELECT id, full_name, email, password_hash, profile_pic_url, created_at
FROM users
WHERE id <> $1
ORDER BY full_name, id
`

// ListUsersExcept returns every account except the given one, for the contact
// sidebar.
func (s *Store) ListUsersExcept(ctx context.Context, id pgtype.UUID) ([]User, error) {
	rows, err := s.pool.Query(ctx, listUsersExcept, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.ProfilePicUrl, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const updateUserProfilePic = `
UPDATE users
SET profile_pic_url = $2
WHERE id = $1
RETURNING id, full_name, email, password_hash, profile_pic_url, created_at
`

type UpdateUserProfilePicParams struct {
	ID            pgtype.UUID
	ProfilePicUrl pgtype.Text
}

// UpdateUserProfilePic replaces the stored profile picture URL.
func (s *Store) UpdateUserProfilePic(ctx context.Context, arg UpdateUserProfilePicParams) (User, error) {
	row := s.pool.QueryRow(ctx, updateUserProfilePic, arg.ID, arg.ProfilePicUrl)

	var u User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.ProfilePicUrl, &u.CreatedAt)
	return u, err
}

const createMessage = `
INSERT INTO messages (sender_id, receiver_id, text, image_url)
VALUES ($1, $2, $3, $4)
RETURNING id, sender_id, receiver_id, text, image_url, created_at
`

type CreateMessageParams struct {
	SenderID   pgtype.UUID
	ReceiverID pgtype.UUID
	Text       pgtype.Text
	ImageUrl   pgtype.Text
}

// CreateMessage durably persists a message and returns the stored row,
// including the assigned id and timestamp.
func (s *Store) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	row := s.pool.QueryRow(ctx, createMessage, arg.SenderID, arg.ReceiverID, arg.Text, arg.ImageUrl)

	var m Message
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &m.ImageUrl, &m.CreatedAt)
	return m, err
}

const listConversation = `
SELECT id, sender_id, receiver_id, text, image_url, created_at
FROM messages
WHERE (sender_id = $1 AND receiver_id = $2)
   OR (sender_id = $2 AND receiver_id = $1)
ORDER BY created_at ASC
`

type ListConversationParams struct {
	UserA pgtype.UUID
	UserB pgtype.UUID
}

// ListConversation returns all messages exchanged between two users, ordered by
// creation time ascending. This is the pull-based catch-up path for messages
// that were never pushed in real time.
func (s *Store) ListConversation(ctx context.Context, arg ListConversationParams) ([]Message, error) {
	rows, err := s.pool.Query(ctx, listConversation, arg.UserA, arg.UserB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &m.ImageUrl, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
