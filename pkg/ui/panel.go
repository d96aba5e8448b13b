package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is an interface for all UI widgets
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement Widget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Track height + label space
}

// CheckboxWrapper wraps Checkbox to implement Widget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 8
}

// ButtonWrapper wraps Button to implement Widget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 8
}

// Panel manages a vertical stack of widgets grouped in titled sections
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []Widget
	Labels        []string // Per-widget label, empty when the widget draws its own

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []section
}

type section struct {
	Title      string
	StartIndex int // Widget index where this section starts
}

// NewPanel creates a new panel at the given screen position
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header before the widgets that follow
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, section{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// AddSlider adds a slider widget to the panel and returns it
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(
		p.X+10,                 // X position with margin
		p.Y+p.nextYOffset()+20, // Below its label line
		p.Width-20,             // Width with margins
		label,
		min, max, value,
	)
	p.Widgets = append(p.Widgets, &SliderWrapper{slider})
	p.Labels = append(p.Labels, label)
	return slider
}

// AddCheckbox adds a checkbox widget to the panel and returns it
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, p.Y+p.nextYOffset()+4, label, value)
	p.Widgets = append(p.Widgets, &CheckboxWrapper{checkbox})
	p.Labels = append(p.Labels, "") // Checkbox draws its own label
	return checkbox
}

// AddButton adds a button widget to the panel and returns it
func (p *Panel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, p.Y+p.nextYOffset()+4, p.Width-20, 24, label, onClick)
	p.Widgets = append(p.Widgets, &ButtonWrapper{button})
	p.Labels = append(p.Labels, "") // Button draws its own label
	return button
}

// Contains reports whether the given screen position lies inside the panel.
// The pointer layer uses it to keep clicks on widgets from grabbing points.
func (p *Panel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

func (p *Panel) nextYOffset() float64 {
	offset := 30.0 // Title space
	offset += float64(len(p.sections)) * 25
	for _, widget := range p.Widgets {
		offset += widget.GetHeight()
	}
	return offset
}

// Update handles input for all widgets
func (p *Panel) Update() {
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	currentY := p.Y + 30
	sectionIdx := 0

	for i, widget := range p.Widgets {
		// Section header before its first widget
		if sectionIdx < len(p.sections) && p.sections[sectionIdx].StartIndex == i {
			sectionBG := color.RGBA{R: 60, G: 60, B: 70, A: 255}
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				sectionBG, true)
			ebitenutil.DebugPrintAt(screen, p.sections[sectionIdx].Title,
				int(p.X+10), int(currentY+5))
			currentY += 25
			sectionIdx++
		}

		if label := p.Labels[i]; label != "" {
			ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(currentY))
		}

		currentY += widget.GetHeight()
		widget.Draw(screen)
	}
}
