package types

import "time"

// LogEntry is one captured HTTP request/response pair, queued on the async
// request logger's channel until it is persisted as an audit row.
type LogEntry struct {
	ID              uint
	Method          string
	URL             string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
