package bingo

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/sonar/grid"
	"github.com/katalvlaran/sonar/input"
)

var (
	// ErrNoWinner indicates the draw ended without a (further) winning board.
	ErrNoWinner = errors.New("bingo: no winning board")

	// ErrNoBoards indicates input without any board section.
	ErrNoBoards = errors.New("bingo: no boards")
)

// Field is one board square.
type Field struct {
	Number int
	Marked bool
}

// Board is a bingo card.
type Board struct {
	fields *grid.Grid[Field]
	won    bool
}

// NewBoard builds an unmarked board from rows of numbers.
func NewBoard(rows [][]int) (*Board, error) {
	frows := make([][]Field, len(rows))
	for y, row := range rows {
		frows[y] = make([]Field, len(row))
		for x, n := range row {
			frows[y][x] = Field{Number: n}
		}
	}
	g, err := grid.FromRows(frows)
	if err != nil {
		return nil, err
	}
	return &Board{fields: g}, nil
}

// Mark marks every field holding n and reports whether the board has won.
func (b *Board) Mark(n int) bool {
	for c := range b.fields.All() {
		if c.Value.Number != n || c.Value.Marked {
			continue
		}
		f, _ := b.fields.Ref(c.X, c.Y)
		f.Marked = true
		if b.complete(b.fields.Row(c.Y)) || b.complete(b.fields.Column(c.X)) {
			b.won = true
		}
	}
	return b.won
}

func (b *Board) complete(line iter.Seq[grid.Cell[Field]]) bool {
	for c := range line {
		if !c.Value.Marked {
			return false
		}
	}
	return true
}

// Reset clears every mark.
func (b *Board) Reset() {
	for f := range b.fields.Refs() {
		f.Marked = false
	}
	b.won = false
}

// Won reports whether the board has a complete row or column.
func (b *Board) Won() bool { return b.won }

// Unmarked sums the numbers not yet marked.
func (b *Board) Unmarked() int {
	sum := 0
	for f := range b.fields.Values() {
		if !f.Marked {
			sum += f.Number
		}
	}
	return sum
}

// Fields exposes the board grid.
func (b *Board) Fields() *grid.Grid[Field] { return b.fields }

// Winner records a board at the moment it won.
type Winner struct {
	Board    int // index into Game.Boards
	Number   int // number that completed the board
	Unmarked int // sum of unmarked numbers at that moment
}

// Score is Unmarked × Number.
func (w Winner) Score() int { return w.Unmarked * w.Number }

// Game holds the draw order and the boards.
type Game struct {
	Numbers []int
	Boards  []*Board
}

// Parse reads the comma separated draw line followed by blank-line
// separated boards.
func Parse(text string) (*Game, error) {
	sections := input.NumberedSections(text)
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrNoBoards)
	}
	draw := sections[0][0]
	if len(sections[0]) != 1 {
		return nil, input.Errorf(draw.No, draw.Text, "draw order must be a single line")
	}
	numbers, err := input.IntList(draw.Text, ",")
	if err != nil {
		return nil, input.At(draw.No, draw.Text, err)
	}
	if len(sections) == 1 {
		return nil, ErrNoBoards
	}

	g := &Game{Numbers: numbers}
	for i, sec := range sections[1:] {
		rows := make([][]int, len(sec))
		for y, l := range sec {
			if rows[y], err = input.Fields(l.Text); err != nil {
				return nil, input.At(l.No, l.Text, err)
			}
			if y > 0 && len(rows[y]) != len(rows[0]) {
				return nil, input.Wrap(l.No, l.Text, fmt.Errorf("%w: board %d row has %d numbers, want %d",
					grid.ErrShape, i+1, len(rows[y]), len(rows[0])))
			}
		}
		b, err := NewBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i+1, err)
		}
		g.Boards = append(g.Boards, b)
	}
	return g, nil
}

// Play draws numbers from a fresh start until the first board wins.
func (g *Game) Play() (Winner, error) {
	var first *Winner
	g.draw(func(w Winner) bool {
		first = &w
		return false
	})
	if first == nil {
		return Winner{}, ErrNoWinner
	}
	return *first, nil
}

// PlayToEnd draws numbers until every board has won or the draw runs out,
// and returns the last board to win.
func (g *Game) PlayToEnd() (Winner, error) {
	var last *Winner
	g.draw(func(w Winner) bool {
		last = &w
		return true
	})
	if last == nil {
		return Winner{}, ErrNoWinner
	}
	return *last, nil
}

// draw resets every board, then marks boards that have not yet won and
// reports each new winner to yield in order. Boards that win stop taking marks.
func (g *Game) draw(yield func(Winner) bool) {
	for _, b := range g.Boards {
		b.Reset()
	}
	for _, n := range g.Numbers {
		for i, b := range g.Boards {
			if b.Won() {
				continue
			}
			if b.Mark(n) {
				if !yield(Winner{Board: i, Number: n, Unmarked: b.Unmarked()}) {
					return
				}
			}
		}
	}
}
