package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldScreen     = "screen"
	FieldSegment    = "segment"
	FieldGameID     = "game_id"
	FieldStatus     = "status"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldAttempt    = "attempt"
	FieldDurationMS = "duration_ms"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldRequestID  = "request_id"
)
