// Package domain holds DTOs for contributions http and service contracts
package domain

import "gitfolio/internal/core/calendar"

// Graph is the render-ready contribution calendar payload.
// LoadID is unique per response so clients can discard answers from
// superseded loads; Synthetic flags placeholder data.
type Graph struct {
	LoadID    string            `json:"load_id" example:"0b8f9c4e-77d4-4b3e-9c41-2f6a9d0a1c55"`
	Synthetic bool              `json:"synthetic" example:"false"`
	Title     string            `json:"title" example:"1,234 contributions in the last year"`
	Calendar  calendar.Calendar `json:"calendar"`
}

// Legend describes the color scale for the same user's calendar
type Legend struct {
	Max     int                     `json:"max" example:"17"`
	Buckets []calendar.LegendBucket `json:"buckets"`
}
