// Package chart draws the grouped bar chart of a benchmark run in the
// terminal: one group per algorithm, one bar per key size it ran with.
package chart

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/cipherbench/internal/benchmark"
	"github.com/user/cipherbench/internal/ciphers"
)

const (
	DefaultWidth = 50
	barRune      = "█"
)

var classColors = map[ciphers.KeyClass]lipgloss.Color{
	ciphers.Key128: lipgloss.Color("#20B9B4"),
	ciphers.Key192: lipgloss.Color("#F4D03F"),
	ciphers.Key256: lipgloss.Color("#E74C3C"),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	groupStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

type Chart struct {
	Title string
	Width int
}

func New(title string) *Chart {
	return &Chart{Title: title, Width: DefaultWidth}
}

type bar struct {
	class   ciphers.KeyClass
	elapsed time.Duration
}

// Render writes the chart. Algorithms appear in first-seen order across
// classes; bars are scaled against the slowest pass of the run.
func (c *Chart) Render(w io.Writer, classes []benchmark.ClassResult) error {
	var order []string
	groups := make(map[string][]bar)
	var slowest time.Duration

	for _, class := range classes {
		if class.Results == nil {
			continue
		}
		class.Results.Each(func(name string, d time.Duration) {
			if _, seen := groups[name]; !seen {
				order = append(order, name)
			}
			groups[name] = append(groups[name], bar{class: class.Class, elapsed: d})
			if d > slowest {
				slowest = d
			}
		})
	}

	width := c.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(c.Title))
	sb.WriteString("\n")
	sb.WriteString(legend(classes))
	sb.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Width(8)
	for _, name := range order {
		sb.WriteString(groupStyle.Render(strings.ToUpper(name)))
		sb.WriteString("\n")
		for _, b := range groups[name] {
			n := scale(b.elapsed, slowest, width)
			style := lipgloss.NewStyle().Foreground(classColors[b.class])
			fmt.Fprintf(&sb, "  %s %s %s\n",
				labelStyle.Render(b.class.String()),
				style.Render(strings.Repeat(barRune, n)),
				mutedStyle.Render(fmt.Sprintf("%.4fs", b.elapsed.Seconds())),
			)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func legend(classes []benchmark.ClassResult) string {
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		style := lipgloss.NewStyle().Foreground(classColors[class.Class])
		parts = append(parts, style.Render(barRune)+" Block Cipher "+class.Class.String())
	}
	return strings.Join(parts, "   ")
}

// scale maps d onto [0, width]. Any non-zero time gets at least one cell.
func scale(d, max time.Duration, width int) int {
	if d <= 0 || max <= 0 {
		return 0
	}
	n := int(float64(d) / float64(max) * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
