package particles

import (
	"fmt"
	"strings"
)

// SVG is a Surface that records draw calls as an SVG document. Lines are
// emitted behind the dots so the links never cover a particle.
type SVG struct {
	// Fill makes the document cover its container, cropping the field
	// rather than letterboxing it, instead of using fixed pixel sizes.
	Fill bool

	width, height float64
	circles       strings.Builder
	lines         strings.Builder
}

func (s *SVG) Clear(width, height float64) {
	s.width, s.height = width, height
	s.circles.Reset()
	s.lines.Reset()
}

func (s *SVG) FillCircle(x, y, r float64, c HSLA) {
	fmt.Fprintf(&s.circles, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>`+"\n", x, y, r, c.CSS())
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c HSLA) {
	fmt.Fprintf(&s.lines, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.0f"/>`+"\n",
		x0, y0, x1, y1, c.CSS(), width)
}

// String returns the document for the last rendered frame.
func (s *SVG) String() string {
	var sb strings.Builder
	if s.Fill {
		fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%" viewBox="0 0 %.0f %.0f" preserveAspectRatio="xMidYMid slice">`+"\n",
			s.width, s.height)
	} else {
		fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
			s.width, s.height, s.width, s.height)
	}
	sb.WriteString("<g>\n")
	sb.WriteString(s.lines.String())
	sb.WriteString("</g>\n<g>\n")
	sb.WriteString(s.circles.String())
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
