package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod     = "method"
	AttrPath       = "path"
	AttrStatus     = "status"
	AttrProvider   = "provider"
	AttrOperation  = "operation"
	AttrScreen     = "screen"
	AttrFromScreen = "from_screen"
	AttrSegment    = "segment"
)
