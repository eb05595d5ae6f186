package constants

const (
	Version = "v0.1.0"
	// UserAgent is sent with every request to the inscription API.
	UserAgent = "inscriber/" + Version
)
