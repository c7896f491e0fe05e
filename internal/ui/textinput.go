package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const MAX_INPUT_LENGTH = 48

// TextInput is a one-line command box. Typed characters land in Text; Enter
// submits the trimmed text and deactivates the box, Escape discards it.
type TextInput struct {
	Text        string
	Placeholder string
	IsActive    bool
	X, Y        int
	Width       int
	Height      int
	OnSubmit    func(string)
}

func NewTextInput(x, y, width, height int, onSubmit func(string)) *TextInput {
	return &TextInput{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		OnSubmit: onSubmit,
	}
}

func (ti *TextInput) Update() {
	if !ti.IsActive {
		return
	}

	ti.Type(string(ebiten.AppendInputChars(nil)))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ti.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.Text = ""
		ti.IsActive = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ti.Submit()
	}
}

// Type appends printable input, up to MAX_INPUT_LENGTH characters.
func (ti *TextInput) Type(s string) {
	for _, r := range s {
		if len(ti.Text) >= MAX_INPUT_LENGTH {
			return
		}
		if r < ' ' || r > '~' {
			continue
		}
		ti.Text += string(r)
	}
}

func (ti *TextInput) Backspace() {
	if len(ti.Text) > 0 {
		ti.Text = ti.Text[:len(ti.Text)-1]
	}
}

func (ti *TextInput) Submit() {
	if ti.OnSubmit != nil {
		ti.OnSubmit(strings.TrimSpace(ti.Text))
	}
	ti.Text = ""
	ti.IsActive = false
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	x, y := float32(ti.X), float32(ti.Y)
	w, h := float32(ti.Width), float32(ti.Height)

	bgColor := color.RGBA{50, 50, 50, 255}
	if ti.IsActive {
		bgColor = color.RGBA{80, 80, 80, 255}
	}
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, false)

	displayTxt := ti.Text
	if ti.IsActive {
		displayTxt += "_"
	} else if displayTxt == "" {
		displayTxt = ti.Placeholder
	}

	ebitenutil.DebugPrintAt(screen, displayTxt, ti.X+5, ti.Y+(ti.Height-16)/2)
}

// IsClicked checks if the mouse click is within the text input bounds
func (ti *TextInput) IsClicked(mouseX, mouseY int) bool {
	return mouseX >= ti.X && mouseX <= ti.X+ti.Width &&
		mouseY >= ti.Y && mouseY <= ti.Y+ti.Height
}
