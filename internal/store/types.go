package store

import "time"

// SaveRecord captures one write of the stylesheet to disk.
type SaveRecord struct {
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	Bytes     int       `json:"bytes"`
	Styles    int       `json:"styles"`
	Backup    string    `json:"backup,omitempty"`
}

// ReloadRecord captures one waybar process action (reload, restart...).
type ReloadRecord struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}
