package response

const (
	MessageSuccess = "Success"

	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

	// RequestIDKey is the gin context key under which middleware stores the request id.
	RequestIDKey = "request_id"
)
