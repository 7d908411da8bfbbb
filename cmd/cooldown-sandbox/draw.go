package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cooldown/vmath"
)

type rgb struct{ r, g, b float64 }

var (
	hotColor  = rgb{220, 60, 40}
	coldColor = rgb{60, 200, 90}
)

const (
	labelWidth = 14
	valueWidth = 10
)

// blend lerps between two colors, t clamped to [0, 1]
func blend(a, b rgb, t float64) tcell.Color {
	t = vmath.Clamp(t, 0, 1)
	return tcell.NewRGBColor(
		int32(vmath.Lerp(a.r, b.r, t)),
		int32(vmath.Lerp(a.g, b.g, t)),
		int32(vmath.Lerp(a.b, b.b, t)),
	)
}

// barCells returns how many of width cells a bar at progress t fills
func barCells(t float64, width int) int {
	if width <= 0 {
		return 0
	}
	return int(vmath.Clamp(t, 0, 1) * float64(width))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw renders every cooldown and gauge
func (sb *Sandbox) Draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()
	barWidth := w - labelWidth - valueWidth - 4

	title := "Cooldown Sandbox"
	if sb.clock.IsPaused() {
		title += " [PAUSED]"
	} else if sb.fps > 0 {
		title += fmt.Sprintf("  %.0f fps", sb.fps)
	}
	drawText(s, 1, 0, title, tcell.StyleDefault.Bold(true))

	y := 2
	for i, sl := range sb.slots {
		st := sl.cd.State()

		label := sl.name
		if sl.key != 0 {
			label = fmt.Sprintf("%c %s", sl.key, sl.name)
		}
		labelStyle := tcell.StyleDefault
		if i == sb.selected {
			labelStyle = labelStyle.Reverse(true)
		}
		drawText(s, 1, y, fmt.Sprintf("%-*.*s", labelWidth, labelWidth, label), labelStyle)

		color := blend(hotColor, coldColor, st.Normalized)
		fill := barCells(st.Normalized, barWidth)
		for x := 0; x < barWidth; x++ {
			ch, style := '░', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
			if x < fill {
				ch, style = '█', tcell.StyleDefault.Foreground(color)
			}
			s.SetContent(labelWidth+2+x, y, ch, nil, style)
		}

		value := fmt.Sprintf("%6.2fs", st.Temperature)
		switch {
		case st.Paused:
			value += " ‖"
		case st.Cold:
			value += " ✓"
		}
		drawText(s, labelWidth+3+barWidth, y, value, tcell.StyleDefault)
		y++
	}

	if len(sb.gauges) > 0 {
		y++
	}
	for _, g := range sb.gauges {
		v := g.th.Value()
		t := vmath.InvLerp(g.th.From, g.th.To, v)
		if g.th.From == g.th.To {
			t = 1
		}
		drawText(s, 1, y, fmt.Sprintf("%-*.*s", labelWidth, labelWidth, "~ "+g.name), tcell.StyleDefault)
		fill := barCells(t, barWidth)
		for x := 0; x < barWidth; x++ {
			ch := ' '
			if x < fill {
				ch = '▒'
			}
			s.SetContent(labelWidth+2+x, y, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorTeal))
		}
		drawText(s, labelWidth+3+barWidth, y, fmt.Sprintf("%7.2f", v), tcell.StyleDefault)
		y++
	}

	drawText(s, 1, h-1, sb.status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	s.Show()
}
