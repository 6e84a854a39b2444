package widget

import (
	"github.com/google/uuid"

	"github.com/MikhailRaia/link-share/internal/model"
)

// Visual classes toggled on share buttons.
const (
	ClassActive    = "share-button--active"
	ClassGenerated = "share-button--generate"
)

// Button is one share affordance: an input plus its visual state.
type Button struct {
	id      string
	input   Input
	classes map[string]bool
	copied  bool
}

// NewButton registers input as a share button under a fresh ID.
func NewButton(input Input) *Button {
	return &Button{
		id:      uuid.NewString(),
		input:   input,
		classes: make(map[string]bool),
	}
}

func (b *Button) ID() string {
	return b.id
}

func (b *Button) Input() Input {
	return b.input
}

func (b *Button) HasClass(class string) bool {
	return b.classes[class]
}

func (b *Button) addClass(class string) {
	b.classes[class] = true
}

func (b *Button) removeClass(class string) {
	delete(b.classes, class)
}

func (b *Button) state() model.ButtonState {
	return model.ButtonState{
		ID:          b.id,
		Display:     b.input.Value(),
		FullURL:     b.input.FullURL(),
		Active:      b.HasClass(ClassActive),
		Generated:   b.HasClass(ClassGenerated),
		Copied:      b.copied,
		Title:       b.input.Title(),
		HintVisible: b.input.TooltipVisible(),
	}
}
