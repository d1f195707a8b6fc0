// =======================
// view/draw.go
// =======================

package view

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"daysglobe/globe"
)

var (
	baseColor  = mustHex("#ffffff")
	hoverColor = mustHex("#ffd166")
	clickColor = mustHex("#ef476f")
	unlit      = mustHex("#101018")
)

const helpText = "DAYS GLOBE | click:open day  drag/arrows:orbit  +/-:zoom  r:reset  l:labels  b:back  q:quit"

// Frame carries the per-frame inputs to Draw.
type Frame struct {
	Angle float64
	State globe.State
	Path  string
}

type renderPoint struct {
	x, y     int
	depth    float64
	char     rune
	style    tcell.Style
	priority int
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// shade darkens c toward the unlit tone by light in [0,1].
func shade(c colorful.Color, light float64) tcell.Color {
	light = math.Max(0, math.Min(1, light))
	r, g, b := unlit.BlendLab(c, light).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders one frame onto s and returns the layout used, for hit testing.
func (sc *Scene) Draw(s tcell.Screen, f Frame) Layout {
	s.Clear()
	w, h := s.Size()
	layout := sc.Layout(f.Angle, w, h)
	if w <= 15 || h <= 8 {
		return layout
	}

	wire := sc.appendWire(nil, f.Angle, w, h)

	var dots []renderPoint
	for _, p := range layout.Points {
		char, color := sc.charset.Point, baseColor
		light := p.Light
		priority := 1
		switch p.Index {
		case f.State.ClickedIndex:
			char, color, light, priority = sc.charset.Clicked, clickColor, 1, 2
		case f.State.HoverIndex:
			char, color, light, priority = sc.charset.Hover, hoverColor, 1, 2
		}
		if !p.Facing {
			light *= 0.45
		}
		dots = append(dots, renderPoint{
			x: p.X, y: p.Y, depth: p.Depth,
			char: char, style: tcell.StyleDefault.Foreground(shade(color, light)), priority: priority})
	}

	// Wireframe under labels, points on top
	sc.plot(s, wire, w, h)
	sc.drawLabels(s, layout, f.State)
	sc.plot(s, dots, w, h)

	drawText(s, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite), helpText)
	if f.Path != "" && f.Path != "/" {
		banner := fmt.Sprintf("[ %s ]", f.Path)
		x := (w - runewidth.StringWidth(banner)) / 2
		drawText(s, x, 1, tcell.StyleDefault.Foreground(tcell.NewRGBColor(239, 71, 111)).Bold(true), banner)
	}
	drawText(s, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), sc.status(f))
	return layout
}

// plot draws rps nearest last within each priority.
func (sc *Scene) plot(s tcell.Screen, rps []renderPoint, w, h int) {
	sort.SliceStable(rps, func(i, j int) bool {
		if rps[i].priority != rps[j].priority {
			return rps[i].priority < rps[j].priority
		}
		return rps[i].depth > rps[j].depth
	})
	for _, rp := range rps {
		if rp.x >= 0 && rp.x < w && rp.y >= 1 && rp.y < h-1 {
			s.SetContent(rp.x, rp.y, rp.char, nil, rp.style)
		}
	}
}

func (sc *Scene) appendWire(rps []renderPoint, angle float64, w, h int) []renderPoint {
	for _, ring := range sc.wire {
		for _, local := range ring {
			world := place(local, angle)
			sx, sy, depth, ok := sc.Camera.Project(world, w, h, sc.aspect)
			if !ok {
				continue
			}
			intensity := lighting(world)
			if !sc.facing(world) {
				intensity *= 0.35
			}
			rps = append(rps, renderPoint{
				x: int(math.Floor(sx)), y: int(math.Floor(sy)), depth: depth,
				char:  sc.charset.wireRune(intensity),
				style: tcell.StyleDefault.Foreground(shade(baseColor, intensity*0.6)), priority: 0})
		}
	}
	return rps
}

func (sc *Scene) drawLabels(s tcell.Screen, layout Layout, st globe.State) {
	w, h := s.Size()
	for _, p := range layout.Points {
		active := p.Index == st.HoverIndex || p.Index == st.ClickedIndex
		if !active && (!sc.labelOn || !p.Facing) {
			continue
		}
		if p.LabelY < 1 || p.LabelY >= h-1 {
			continue
		}
		text := sc.labels[p.Index]
		x := p.LabelX - runewidth.StringWidth(text)/2
		if x < 0 || x+runewidth.StringWidth(text) > w {
			continue
		}
		style := tcell.StyleDefault.Foreground(shade(baseColor, p.Light*0.8))
		if active {
			style = tcell.StyleDefault.Foreground(shade(hoverColor, 1)).Bold(true)
		}
		drawText(s, x, p.LabelY, style, text)
	}
}

func (sc *Scene) status(f Frame) string {
	hover := "-"
	if f.State.Hovering() {
		hover = sc.Label(f.State.HoverIndex)
	}
	mode := "rotating"
	switch {
	case f.State.Clicked():
		mode = "opening " + sc.Label(f.State.ClickedIndex)
	case !f.State.Rotating:
		mode = "paused"
	}
	return fmt.Sprintf("Route: %s | Hover: %s | %s | Angle: %.2f | Zoom: %.1f",
		f.Path, hover, mode, math.Mod(f.Angle, 2*math.Pi), defaultDistance/sc.Camera.Distance)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
