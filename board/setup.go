package board

import (
	"strings"

	"github.com/daystram/chesstree/position"
)

// parseSetup fills the grid from a setup string. The parser is lenient: unknown symbols and
// pieces falling outside the board are reported through the logger and skipped.
func (b *Board) parseSetup(setup string) {
	var x, y int
	for _, sym := range setup {
		switch {
		case sym == '/':
			y++
			x = 0
		case '1' <= sym && sym <= '8':
			x += int(sym - '0')
		default:
			p, s, ok := ParseSymbol(sym)
			if !ok {
				b.logger("unknown setup symbol:", string(sym))
				continue
			}
			pos, ok := position.NewPos(0, 0).Offset(x, y)
			if !ok {
				b.logger("setup symbol out of bounds:", string(sym), "at", x, y)
				x++
				continue
			}
			b.set(pos, Pack(p, s))
			x++
		}
	}
}

// Setup encodes the grid in the notation accepted by WithSetup.
func (b *Board) Setup() string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		var skip int
		for x := 0; x < Width; x++ {
			p, s, ok := b.cells[y][x].Unpack()
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}
