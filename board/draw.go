package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesstree/position"
)

var (
	squareDark  = color.New(color.FgBlack, color.BgGreen)
	squareLight = color.New(color.FgBlack, color.BgHiWhite)
	squareLabel = color.New(color.Bold)
)

// Dump renders the grid as plain ASCII with FEN symbols, Black's home rank on top.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NewPos(0, y).NotationComponentY()))
		for x := 0; x < Width; x++ {
			sym := " "
			if p, s, ok := b.cells[y][x].Unpack(); ok {
				sym = p.SymbolFEN(s)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NewPos(x, 0).NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the grid with coloured squares and unicode pieces.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		_, _ = builder.WriteString(squareLabel.Sprintf(" %s ", position.NewPos(0, y).NotationComponentY()))
		for x := 0; x < Width; x++ {
			sym := " "
			if p, s, ok := b.cells[y][x].Unpack(); ok {
				sym = p.SymbolUnicode(s, false)
			}
			square := squareLight
			if x%2^y%2 == 1 {
				square = squareDark
			}
			_, _ = builder.WriteString(square.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(squareLabel.Sprintf(" %s ", position.NewPos(x, 0).NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %4d (%s)\nlog:  %4d\nstat: %s", b.turn, b.Turn(), b.log.Len(), b.Status())
}
