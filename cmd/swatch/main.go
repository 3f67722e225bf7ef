package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pegsolve/evalplot/palette"
)

// Config holds the interactive state
type Config struct {
	Hues      int
	BlendMode int
}

const (
	minHues = 2
	maxHues = 16
)

// Blend spaces to cycle through when inspecting hue spacing
var blendModes = []struct {
	name  string
	blend func(a, b colorful.Color, t float64) colorful.Color
}{
	{"Luv", colorful.Color.BlendLuv},
	{"HCL", colorful.Color.BlendHcl},
	{"RGB", colorful.Color.BlendRgb},
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}
	if err := screen.Init(); err != nil {
		panic(err)
	}
	defer screen.Fini()

	state := Config{
		Hues:      6, // Wheel size the category colors are drawn from
		BlendMode: 0,
	}

	eventCh := make(chan tcell.Event, 10)

	// Input loop
	go func() {
		for {
			eventCh <- screen.PollEvent()
		}
	}()

	// Main Loop
	for {
		// --- Logic ---
		select {
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyCtrlC, tcell.KeyEscape:
					return
				case tcell.KeyRight: // More hues
					if state.Hues < maxHues {
						state.Hues++
					}
				case tcell.KeyLeft: // Fewer hues
					if state.Hues > minHues {
						state.Hues--
					}
				case tcell.KeyTab: // Cycle blend space forward
					state.BlendMode = (state.BlendMode + 1) % len(blendModes)
				case tcell.KeyBacktab: // Cycle blend space backward
					state.BlendMode = (state.BlendMode - 1 + len(blendModes)) % len(blendModes)
				case tcell.KeyRune:
					if ev.Rune() == 'q' {
						return
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		default:
		}

		// --- Rendering ---

		screen.Clear()
		w, _ := screen.Size()

		// 1. Header Info
		printStr(screen, 0, 0, "EVALPLOT PALETTE SWATCH", styleFor(tcell.ColorWhite))
		printStr(screen, 0, 1, fmt.Sprintf("Hues [Lt/Rt]: %-3d Blend [Tab/S-Tab]: %-4s Quit [q/Esc]",
			state.Hues, blendModes[state.BlendMode].name), styleFor(tcell.ColorYellow))

		// 2. Hue Wheel
		printStr(screen, 0, 3, fmt.Sprintf("--- Hues(%d) ---", state.Hues), styleFor(tcell.ColorGray))
		drawHueRow(screen, w, 4, state)

		// 3. Gradient Strip
		printStr(screen, 0, 7, "--- Neighbor Blend ---", styleFor(tcell.ColorGray))
		drawGradientStrip(screen, w, 8, state)

		// 4. Category Table
		printStr(screen, 0, 10, "--- Categories (fixed 6-hue wheel) ---", styleFor(tcell.ColorGray))
		drawCategoryTable(screen, 11)

		screen.Show()
		time.Sleep(16 * time.Millisecond)
	}
}

func drawHueRow(s tcell.Screen, w, y int, state Config) {
	const cellsPerHue = 4
	for i, c := range palette.Hues(state.Hues) {
		x := 2 + i*(cellsPerHue+1)
		if x+cellsPerHue >= w {
			break
		}
		st := styleFor(cellColor(c))
		for j := 0; j < cellsPerHue; j++ {
			s.SetContent(x+j, y, '█', nil, st)
		}
		printStr(s, x, y+1, fmt.Sprintf("%d", i), styleFor(tcell.ColorGray))
	}
}

func drawGradientStrip(s tcell.Screen, w, y int, state Config) {
	hues := make([]colorful.Color, 0, state.Hues)
	for _, c := range palette.Hues(state.Hues) {
		col, ok := colorful.MakeColor(c)
		if !ok {
			continue
		}
		hues = append(hues, col)
	}
	if len(hues) < 2 {
		return
	}

	barWidth := w - 4
	blend := blendModes[state.BlendMode].blend
	for x := 0; x < barWidth; x++ {
		// Position along the wheel, wrapping back to hue zero at the end
		pos := float64(x) / float64(barWidth) * float64(len(hues))
		i := int(pos) % len(hues)
		frac := pos - float64(int(pos))
		c := blend(hues[i], hues[(i+1)%len(hues)], frac).Clamped()
		st := styleFor(cellColor(c))
		s.SetContent(x+2, y, '█', nil, st)
	}
}

func drawCategoryTable(s tcell.Screen, startY int) {
	headers := []string{"Category", "Color", "Marker", "Hex"}
	colX := []int{2, 20, 28, 36}

	for i, h := range headers {
		printStr(s, colX[i], startY, h, styleFor(tcell.ColorGray))
	}

	y := startY + 2
	for _, cat := range palette.Categories() {
		tc := cellColor(cat.Color())
		st := styleFor(tc)

		printStr(s, colX[0], y, cat.String(), styleFor(tcell.ColorWhite))
		for j := 0; j < 4; j++ {
			s.SetContent(colX[1]+j, y, '█', nil, st)
		}
		s.SetContent(colX[2], y, cat.Marker().Rune(), nil, st)

		if col, ok := colorful.MakeColor(cat.Color()); ok {
			r, g, b := col.RGB255()
			printStr(s, colX[3], y, fmt.Sprintf("#%02X%02X%02X", r, g, b), styleFor(tcell.ColorGray))
		}
		y++
	}
}

// Helpers

func styleFor(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg)
}

func cellColor(c color.Color) tcell.Color {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := col.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func printStr(s tcell.Screen, x, y int, str string, st tcell.Style) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, st)
	}
}
