/*
Package chat contains the presence-aware realtime delivery core.

This file defines the Message record exchanged between users and the content
validation applied before a message may be persisted.
*/
package chat

import (
	"dmchat/internal/pkg/errs"
)

// MaxTextBytes is the maximum allowed size (in bytes) for message text.
const MaxTextBytes = 5000

// Message is a direct message after persistence. It is immutable once created
// and is pushed verbatim as the payload of a message:new event.
type Message struct {
	// ID is the database-assigned identifier of the persisted message.
	ID string `json:"id"`

	// SenderID and ReceiverID are user ids.
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`

	// Text is the optional message text.
	Text string `json:"text,omitempty"`

	// Image is the optional public URL of an uploaded image.
	Image string `json:"image,omitempty"`

	// CreatedAt is the persistence timestamp in RFC 3339 format.
	CreatedAt string `json:"createdAt"`
}

// ValidateContent enforces the message content invariant before any upload or
// persistence happens: at least one of text and image must be present, and the
// text must fit the size limit.
func ValidateContent(text string, hasImage bool) *errs.CustomError {
	if text == "" && !hasImage {
		return errs.NewError(errs.ErrMessageEmpty)
	}

	if len(text) > MaxTextBytes {
		return errs.NewError(errs.ErrMessageContentTooLong)
	}

	return nil
}
