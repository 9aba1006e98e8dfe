package message

const (
	InvalidInput     = "Invalid input."
	NotFound         = "Not found."
	ItemNotFound     = "Item not found."
	ServerError      = "An unexpected error occurred."
	PayloadTooLarge  = "Request body is too large."
	UnsupportedMedia = "Content-Type must be application/json."
	RequestTimeout   = "Request cancelled or timeout."
	UpstreamFailed   = "The assistant is unavailable right now."
	EnvErrFmt        = "environment variable is not set: %s"
)
