package model

import "time"

// TimelineStep is one rendered entry of a derived progress display. Steps
// are computed fresh from the entity's current status and never persisted.
type TimelineStep struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Title       string     `json:"title"`
	Icon        string     `json:"icon,omitempty"`
	Description string     `json:"description,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Completed   bool       `json:"completed"`
	Current     bool       `json:"current"`
}
