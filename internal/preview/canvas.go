package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/particles"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// pixelScale is how many field pixels one braille dot covers, so a
// terminal-sized field gets a page-like particle density.
const pixelScale = 4.0

// Background colours the particle alpha is blended over.
const (
	darkBackground  = "#0b0a14"
	lightBackground = "#f7f5fb"
)

func background(m particles.Mode) string {
	if m == particles.Light {
		return lightBackground
	}
	return darkBackground
}

// Canvas is a particles.Surface drawn with braille cells. Each cell holds
// 2x4 sub-pixels, so a Width x Height canvas is a field of Width*2 by
// Height*4 dots, each covering pixelScale field pixels. A cell takes the
// colour of the last shape drawn on it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	colors        [][]string
	bg            string
	styles        map[string]lipgloss.Style
}

func NewCanvas(w, h int, bg string) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		colors: make([][]string, h),
		bg:     bg,
		styles: make(map[string]lipgloss.Style),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.colors[i] = make([]string, w)
	}
	c.reset()
	return c
}

// PixelSize is the field size the canvas covers.
func (c *Canvas) PixelSize() (float64, float64) {
	return float64(c.Width*2) * pixelScale, float64(c.Height*4) * pixelScale
}

func dot(v float64) int { return int(math.Round(v / pixelScale)) }

func (c *Canvas) SetBackground(bg string) { c.bg = bg }

func (c *Canvas) reset() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.colors[i][j] = ""
		}
	}
}

// Set lights the sub-pixel (x, y) in colour hex.
func (c *Canvas) Set(x, y int, hex string) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.colors[row][col] = hex
}

// Clear ignores the requested size; the canvas is resized by replacing it.
func (c *Canvas) Clear(_, _ float64) { c.reset() }

func (c *Canvas) FillCircle(x, y, r float64, col particles.HSLA) {
	hex := col.Blend(c.bg)
	cx, cy := dot(x), dot(y)
	r /= pixelScale
	ir := int(math.Ceil(r))
	c.Set(cx, cy, hex)
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.Set(cx+dx, cy+dy, hex)
			}
		}
	}
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col particles.HSLA) {
	c.DrawLine(dot(x0), dot(y0), dot(x1), dot(y1), col.Blend(c.bg))
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, hex string) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, hex)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) style(hex string) lipgloss.Style {
	s, ok := c.styles[hex]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		c.styles[hex] = s
	}
	return s
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if r == blank {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style(c.colors[i][j]).Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
