package model

import (
	"encoding/json"
	"time"
)

// Version is the program version reported by --version and the web API.
const Version = "0.3.0"

// OutputKind is the semantic tag of a scrollback line.
type OutputKind int

const (
	Standard OutputKind = iota
	Error
	Success
	Info
)

func (k OutputKind) String() string {
	switch k {
	case Error:
		return "error"
	case Success:
		return "success"
	case Info:
		return "info"
	default:
		return "standard"
	}
}

func (k OutputKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// OutputLine is one rendered entry in a session's scrollback. Content may
// span several lines (help text, file contents).
type OutputLine struct {
	Content   string     `json:"content"`
	Kind      OutputKind `json:"kind"`
	Timestamp time.Time  `json:"timestamp"`
}

// HistoryItem records one executed command.
type HistoryItem struct {
	Command          string       `json:"command"`
	Output           []OutputLine `json:"output"`
	WorkingDirectory string       `json:"workingDirectory"`
	Timestamp        time.Time    `json:"timestamp"`
}
