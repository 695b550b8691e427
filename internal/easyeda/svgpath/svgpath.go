// Package svgpath parses the restricted SVG path sub-dialect used by
// vendor shape records: only M, L, A, Z, uppercase, absolute coordinates.
package svgpath

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
)

// CommandKind identifies which of the four supported path commands a
// Command value holds.
type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	Arc
	ClosePath
)

// Command is one parsed path instruction. Only the fields relevant to
// Kind are populated.
type Command struct {
	Kind CommandKind
	X, Y float64

	RX, RY         float64
	XAxisRotation  float64
	LargeArc       bool
	Sweep          bool
}

var (
	moveRe = regexp.MustCompile(`^M\s*([-\d.]+)[,\s]+([-\d.]+)`)
	lineRe = regexp.MustCompile(`^L\s*([-\d.]+)[,\s]+([-\d.]+)`)
	arcRe  = regexp.MustCompile(`^A\s*([-\d.]+)[,\s]+([-\d.]+)[,\s]+([-\d.]+)[,\s]+([01])[,\s]+([01])[,\s]+([-\d.]+)[,\s]+([-\d.]+)`)
	closeRe = regexp.MustCompile(`^Z`)
)

// Parse decodes path into an ordered command sequence. Malformed
// commands are skipped one character at a time and parsing resumes;
// Parse only fails with apperror.ErrBadPath when zero commands were
// parsed from the entire string.
func Parse(path string) ([]Command, error) {
	var commands []Command
	pos := 0
	for pos < len(path) {
		rest := path[pos:]
		if trimmed := strings.TrimLeft(rest, " \t\n,"); trimmed != rest {
			pos += len(rest) - len(trimmed)
			continue
		}

		if m := moveRe.FindStringSubmatch(rest); m != nil {
			x, _ := strconv.ParseFloat(m[1], 64)
			y, _ := strconv.ParseFloat(m[2], 64)
			commands = append(commands, Command{Kind: MoveTo, X: x, Y: y})
			pos += len(m[0])
			continue
		}
		if m := lineRe.FindStringSubmatch(rest); m != nil {
			x, _ := strconv.ParseFloat(m[1], 64)
			y, _ := strconv.ParseFloat(m[2], 64)
			commands = append(commands, Command{Kind: LineTo, X: x, Y: y})
			pos += len(m[0])
			continue
		}
		if m := arcRe.FindStringSubmatch(rest); m != nil {
			rx, _ := strconv.ParseFloat(m[1], 64)
			ry, _ := strconv.ParseFloat(m[2], 64)
			rot, _ := strconv.ParseFloat(m[3], 64)
			large := m[4] == "1"
			sweep := m[5] == "1"
			x, _ := strconv.ParseFloat(m[6], 64)
			y, _ := strconv.ParseFloat(m[7], 64)
			commands = append(commands, Command{
				Kind: Arc, RX: rx, RY: ry, XAxisRotation: rot,
				LargeArc: large, Sweep: sweep, X: x, Y: y,
			})
			pos += len(m[0])
			continue
		}
		if m := closeRe.FindStringSubmatch(rest); m != nil {
			commands = append(commands, Command{Kind: ClosePath})
			pos += len(m[0])
			continue
		}

		// Skip the offending character and resume.
		pos++
	}

	if len(commands) == 0 {
		return nil, apperror.ErrBadPath
	}
	return commands, nil
}

// HasClose reports whether any command in the sequence is a ClosePath,
// used to decide the fill flag of a path-derived polygon.
func HasClose(commands []Command) bool {
	for _, c := range commands {
		if c.Kind == ClosePath {
			return true
		}
	}
	return false
}
