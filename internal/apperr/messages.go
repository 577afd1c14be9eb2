package apperr

// Canonical user-facing messages. These are part of the API contract: the
// same situation always produces the same wording, so clients can rely on
// it and the credentials flow never reveals which check failed.
const (
	// MsgInvalidJSON covers malformed bodies and failed schema checks alike.
	MsgInvalidJSON = "Given JSON is incorrectly formatted or missing some information."

	// MsgBookNotFound is returned for a well-formed id with no matching book.
	MsgBookNotFound = "The book by that ID doesn't exist. Please type correct ID."

	// MsgUnsupportedContentType is returned when the Content-Type header does
	// not match the route's single allowed value.
	MsgUnsupportedContentType = "The specified content type is not supported by that route. Please read docs to choose correct content type."

	// MsgIncorrectAddress is the fallback for unmatched method/path pairs.
	MsgIncorrectAddress = "Incorrect address. Please ensure, that you are using correct method on correct path"

	// MsgIncorrectCredentials is shared by the "unknown user" and "wrong
	// password" branches so usernames cannot be enumerated.
	MsgIncorrectCredentials = "Incorrect username or password."

	// MsgIncorrectAPIKey is returned when a supplied API key matches no user.
	MsgIncorrectAPIKey = "The supplied API key is not valid."

	// MsgUserExists is returned when a registration collides on username.
	MsgUserExists = "User with that username already exists."

	// MsgTooManyRequests is returned when a client exhausts its rate limit.
	MsgTooManyRequests = "Too many requests. Please slow down."

	// MsgInternal is the only message ever emitted for unclassified failures.
	MsgInternal = "Internal server error occurred. Please try again later."
)
