// Package render draws boards for the terminal, coloured with fatih/color
// or as plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/engine"
)

// Theme holds the colour attributes used for a coloured board.
type Theme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	SquareCheck color.Attribute
	White       color.Attribute
	Black       color.Attribute
	Label       color.Attribute
}

// DefaultTheme is a palette that reads on both light and dark terminals.
var DefaultTheme = Theme{
	SquareLight: color.BgYellow,
	SquareDark:  color.BgGreen,
	SquareCheck: color.BgRed,
	White:       color.FgHiWhite,
	Black:       color.FgBlack,
	Label:       color.FgCyan,
}

// Options select what Render draws.
type Options struct {
	Colour      bool
	Coordinates bool
}

// Renderer turns boards into text.
type Renderer struct {
	theme Theme
	opts  Options
}

// New creates a renderer.
func New(theme Theme, opts Options) *Renderer {
	return &Renderer{theme: theme, opts: opts}
}

// Render returns the board as text, one line per row from the eighth rank
// down. Without colour or coordinates it is the plain board dump.
func (r *Renderer) Render(board *chess.Board) string {
	if !r.opts.Colour && !r.opts.Coordinates {
		return board.String()
	}
	if !r.opts.Colour {
		return r.plain(board)
	}
	return r.coloured(board)
}

func (r *Renderer) plain(board *chess.Board) string {
	var sb strings.Builder
	for row, line := range strings.Split(board.String(), "\n") {
		fmt.Fprintf(&sb, "%c %s\n", chess.LastRank-row, line)
	}
	sb.WriteString("   ")
	sb.WriteString(fileLabels(" "))
	return sb.String()
}

func (r *Renderer) coloured(board *chess.Board) string {
	inCheck := chess.NoSquare
	if engine.IsInCheck(board, board.SideToMove) {
		inCheck = board.KingSquare(board.SideToMove)
	}
	label := r.paint(r.theme.Label)

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if r.opts.Coordinates {
			sb.WriteString(label.Sprint(string(rune(chess.LastRank - row))))
			sb.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			s := chess.SquareAt(row, file)
			sb.WriteString(r.square(board.Get(s), s, s == inCheck))
		}
		sb.WriteByte('\n')
	}
	if r.opts.Coordinates {
		sb.WriteString("  ")
		sb.WriteString(label.Sprint(" " + fileLabels("  ")))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (r *Renderer) square(p chess.Piece, s chess.Square, check bool) string {
	bg := r.theme.SquareDark
	switch {
	case check:
		bg = r.theme.SquareCheck
	case (s.Row()+s.File())%2 == 0:
		bg = r.theme.SquareLight
	}
	if p.IsBlank() {
		return r.paint(bg).Sprint("   ")
	}
	fg := r.theme.White
	if p.Colour() == chess.Black {
		fg = r.theme.Black
	}
	return r.paint(fg, bg).Sprint(" " + string(p) + " ")
}

// paint builds a colour that ignores the global NO_COLOR detection, so
// output depends on Options alone.
func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func fileLabels(sep string) string {
	labels := make([]string, chess.BoardSize)
	for f := range labels {
		labels[f] = string(rune(chess.FileBase + f))
	}
	return strings.Join(labels, sep)
}
