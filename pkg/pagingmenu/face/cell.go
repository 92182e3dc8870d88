package face

import "github.com/mattn/go-runewidth"

// CellFace measures text in terminal cells: one row high, as many columns
// as the string occupies.
type CellFace struct {
	cond *runewidth.Condition
}

// NewCellFace creates a cell face. eastAsian counts ambiguous-width runes
// as two columns, as East Asian terminals do.
func NewCellFace(eastAsian bool) *CellFace {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &CellFace{cond: cond}
}

func (f *CellFace) Measure(text string) (width, height float64) {
	return float64(f.cond.StringWidth(text)), 1
}
