package widgets

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-joist/joist/pkg/widget"
)

// Textbox displays a block of text and fits to its measured extent.
//
// Measurement goes through a [font.Face]; the default is the basic 7x13
// face, and SetFace swaps in any other. Changing the text or face emits
// widget::layout_changed followed by widget::redraw_needed, so cached fit
// results are discarded before the next query.
type Textbox struct {
	*widget.Base

	face font.Face
	text string
}

// NewTextbox creates a textbox showing the given text.
func NewTextbox(text string) *Textbox {
	t := &Textbox{
		Base: widget.New(),
		face: basicfont.Face7x13,
		text: text,
	}
	t.FitFunc = t.measure
	return t
}

// Text returns the current text.
func (t *Textbox) Text() string {
	return t.text
}

// SetText replaces the text. A no-op when the text is unchanged.
func (t *Textbox) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.EmitSignal(widget.SignalLayoutChanged)
	t.EmitSignal(widget.SignalRedrawNeeded)
}

// SetFace replaces the measuring face.
func (t *Textbox) SetFace(face font.Face) {
	if face == nil || face == t.face {
		return
	}
	t.face = face
	t.EmitSignal(widget.SignalLayoutChanged)
	t.EmitSignal(widget.SignalRedrawNeeded)
}

// measure reports the pixel extent of the text: the widest line by the
// line count times the face's line height. Fit clamps the result to the
// available box afterwards.
func (t *Textbox) measure(width, height float64) (float64, float64) {
	if t.text == "" {
		return 0, 0
	}
	lineHeight := float64(t.face.Metrics().Height.Ceil())
	var widest float64
	lines := strings.Split(t.text, "\n")
	for _, line := range lines {
		advance := float64(font.MeasureString(t.face, line).Ceil())
		if advance > widest {
			widest = advance
		}
	}
	return widest, lineHeight * float64(len(lines))
}
