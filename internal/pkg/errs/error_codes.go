/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Messaging Business Logic Errors
const (
	// ErrMessageEmpty indicates that a message carried neither text nor an image.
	ErrMessageEmpty = 2101

	// ErrInvalidRecipient indicates that the recipient identifier is not a valid user id.
	ErrInvalidRecipient = 2102

	// ErrRecipientNotFound indicates that the recipient does not exist.
	ErrRecipientNotFound = 2103

	// ErrMessageContentTooLong indicates that the message text exceeded the maximum length limit.
	ErrMessageContentTooLong = 2104

	// ErrImageInvalid indicates that the submitted image data could not be decoded
	// or is not an allowed image type.
	ErrImageInvalid = 2105

	// ErrImageTooLarge indicates that the submitted image exceeds the size limit.
	ErrImageTooLarge = 2106
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrMissingToken indicates that no session token accompanied the request.
	ErrMissingToken = 3001

	// ErrTokenExpired indicates that the session token has expired.
	ErrTokenExpired = 3002

	// ErrInvalidToken indicates that the session token failed validation.
	ErrInvalidToken = 3003

	// ErrUnauthorized indicates that the request requires an authenticated user.
	ErrUnauthorized = 3004

	// ErrInvalidFullName indicates a missing or malformed full name at registration.
	ErrInvalidFullName = 3101

	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = 3102

	// ErrPasswordTooShort indicates the password does not meet the minimum length.
	ErrPasswordTooShort = 3103

	// ErrUserAlreadyExists indicates that the email address is already registered.
	ErrUserAlreadyExists = 3104

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = 3105

	// ErrUserNotFound indicates that the requested user account does not exist.
	ErrUserNotFound = 3106
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrUploadFailed indicates that uploading an asset to the storage host failed.
	ErrUploadFailed = 5001
)
