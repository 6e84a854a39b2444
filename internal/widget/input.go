package widget

import "unicode/utf8"

// Input is the text control a share button displays its link in.
type Input interface {
	Value() string
	SetValue(value string)

	// FullURL is the untruncated link kept alongside the displayed value.
	FullURL() string
	SetFullURL(fullURL string)

	Focus()
	SetSelectionRange(start, end int)
	SelectedText() string

	SetTitle(title string)
	Title() string
	ShowTooltip()
	TooltipVisible() bool
}

// TextInput is an in-memory Input.
type TextInput struct {
	value          string
	fullURL        string
	title          string
	focused        bool
	selStart       int
	selEnd         int
	tooltipVisible bool
}

// NewTextInput returns an input showing value with value as its full URL.
func NewTextInput(value string) *TextInput {
	return &TextInput{
		value:   value,
		fullURL: value,
	}
}

func (in *TextInput) Value() string {
	return in.value
}

// SetValue replaces the value and collapses the selection.
func (in *TextInput) SetValue(value string) {
	in.value = value
	in.selStart, in.selEnd = 0, 0
}

func (in *TextInput) FullURL() string {
	return in.fullURL
}

func (in *TextInput) SetFullURL(fullURL string) {
	in.fullURL = fullURL
}

func (in *TextInput) Focus() {
	in.focused = true
}

func (in *TextInput) Focused() bool {
	return in.focused
}

// SetSelectionRange selects characters [start, end) clamped to the value
// length.
func (in *TextInput) SetSelectionRange(start, end int) {
	n := utf8.RuneCountInString(in.value)
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	in.selStart, in.selEnd = start, end
}

func (in *TextInput) SelectedText() string {
	return string([]rune(in.value)[in.selStart:in.selEnd])
}

func (in *TextInput) SetTitle(title string) {
	in.title = title
}

func (in *TextInput) Title() string {
	return in.title
}

func (in *TextInput) ShowTooltip() {
	in.tooltipVisible = true
}

func (in *TextInput) TooltipVisible() bool {
	return in.tooltipVisible
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
