package model

// ButtonState is the external representation of a share button.
type ButtonState struct {
	ID          string `json:"id"`
	Display     string `json:"display"`
	FullURL     string `json:"full_url"`
	Active      bool   `json:"active"`
	Generated   bool   `json:"generated"`
	Copied      bool   `json:"copied"`
	Title       string `json:"title,omitempty"`
	HintVisible bool   `json:"hint_visible"`
}
