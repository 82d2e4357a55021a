package model

// Glyphs shared by the terminal UI and the batch renderer.
// Using simple single-width characters for consistent terminal rendering
const (
	IconPrompt    = "$" // Echo prefix for executed commands
	IconDirSuffix = "/" // Appended to directory names in listings
	IconTabClose  = "×" // Close marker on inactive tabs
	IconTabActive = "●" // Marker on the active tab
	IconNewTab    = "+" // New tab button
	IconError     = "✗" // Prefix for error lines in plain output
	IconSuccess   = "✓" // Prefix for success lines in plain output
	IconEditing   = "✎" // Editor overlay title
)
