/*
Package user contains core data structures related to user identity.

It defines the basic representation of a registered account (the User struct),
used for passing user information both internally and to clients.
*/
package user

// User represents the public identity information of a registered account.
// Fields use JSON tags for serialization in HTTP responses and realtime events.
type User struct {
	// ID is the database-assigned unique identifier for the user.
	ID string `json:"id"`

	// FullName is the user's display name.
	FullName string `json:"fullName"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// ProfilePic is the public URL of the user's profile picture, empty when unset.
	ProfilePic string `json:"profilePic,omitempty"`
}
