package dto

import "github.com/helixml/almanac/infrastructure/almanacdoc"

// MinimumRequest is the body of POST /api/v1/almanac/minimum.
type MinimumRequest struct {
	Document almanacdoc.Document `json:"document"`
	// Mode is "points" (default) or "ranges".
	Mode string `json:"mode"`
}

// Interval is a half-open range [start, start+length).
type Interval struct {
	Start  uint64 `json:"start"`
	Length uint64 `json:"length"`
}

// MinimumResponse is the body returned for a minimum query.
type MinimumResponse struct {
	Minimum   uint64     `json:"minimum"`
	Mode      string     `json:"mode"`
	Intervals []Interval `json:"intervals"`
	ElapsedNS int64      `json:"elapsed_ns"`
}
