package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/genesis/narrative"
)

const quizInputMax = 64

// QuizPanel renders the narrative prompts once the land phase begins. The
// text box feeds answers into the quiz, which drives the progression gate.
type QuizPanel struct {
	renderer *Renderer
	width    int32

	input         string
	editMode      bool
	feedback      string
	feedbackTimer float32
}

// NewQuizPanel creates a new quiz panel.
func NewQuizPanel(width int32) *QuizPanel {
	return &QuizPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Update ages out transient feedback.
func (p *QuizPanel) Update(delta float32) {
	if p.feedbackTimer > 0 {
		p.feedbackTimer -= delta
		if p.feedbackTimer <= 0 {
			p.feedback = ""
		}
	}
}

// Editing reports whether the text box currently has focus, so keyboard
// shortcuts can be suppressed while typing.
func (p *QuizPanel) Editing() bool {
	return p.editMode
}

// Draw renders the current prompt centered near the bottom of the screen.
// Reports whether an answer was attempted this frame and whether it was
// accepted.
func (p *QuizPanel) Draw(quiz *narrative.Quiz, screenWidth, screenHeight int32) (attempted, correct bool) {
	prompt, ok := quiz.Current()
	if !ok {
		return false, false
	}

	r := p.renderer
	padding := r.Theme.Padding

	panelHeight := int32(110)
	x := screenWidth/2 - p.width/2
	y := screenHeight - panelHeight - 20

	r.DrawPanel(x, y, p.width, panelHeight)

	innerX := x + padding
	innerY := y + padding

	title := fmt.Sprintf("Epoch question %d of 3", quiz.Answered()+1)
	rl.DrawText(title, innerX, innerY, r.Theme.FontSize, r.Theme.SectionHeader)
	innerY += r.Theme.LineHeight

	rl.DrawText(prompt.Question, innerX, innerY, r.Theme.HeaderFontSize, rl.White)
	innerY += r.Theme.LineHeight + 8

	boxWidth := float32(p.width - padding*3 - 90)
	box := rl.Rectangle{X: float32(innerX), Y: float32(innerY), Width: boxWidth, Height: 26}
	if gui.TextBox(box, &p.input, quizInputMax, p.editMode) {
		p.editMode = !p.editMode
	}

	submit := gui.Button(rl.Rectangle{
		X:      float32(innerX) + boxWidth + 10,
		Y:      float32(innerY),
		Width:  80,
		Height: 26,
	}, "Answer")

	if submit || (p.editMode && rl.IsKeyPressed(rl.KeyEnter)) {
		answer := strings.TrimSpace(p.input)
		if answer != "" {
			attempted = true
			if quiz.Answer(answer) {
				correct = true
				p.input = ""
				p.feedback = "The world shifts..."
			} else {
				p.feedback = "The epoch does not respond. Try another answer."
			}
			p.feedbackTimer = 3
		}
	}

	if p.feedback != "" {
		rl.DrawText(p.feedback, innerX, innerY+32, r.Theme.FontSize, r.Theme.LabelColor)
	}

	return attempted, correct
}
