package game

// CellKind is the variant tag of a stage cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellFaceUp
	CellFaceDown
)

// cell is one slot of the pyramid. card is meaningful for face-up cells
// (the exposed card) and face-down cells (the hidden card).
type cell struct {
	kind CellKind
	card Card
}

// StageController owns the staggered pyramid of drawable cards for the
// current age. It draws from the deck to populate cells and is the only
// sub-controller holding a direct reference to another one.
type StageController struct {
	deck     *DeckController
	rows     [][]cell
	discards []Card
}

// NewStageController creates an empty stage drawing from deck.
func NewStageController(deck *DeckController) *StageController {
	return &StageController{deck: deck}
}

// Set lays out the pyramid for the given age from its fixed row templates,
// drawing one card from the deck for every non-empty cell.
func (s *StageController) Set(age Age) error {
	templates := stageRowsForAge(age)
	if templates == nil {
		return invariant("no stage layout for age %s", age)
	}

	s.rows = make([][]cell, 0, len(templates))
	for _, template := range templates {
		row := make([]cell, 0, len(template))
		for _, kind := range template {
			switch kind {
			case 'U':
				card, err := s.deck.Draw()
				if err != nil {
					return err
				}
				row = append(row, cell{kind: CellFaceUp, card: card})
			case 'D':
				card, err := s.deck.Draw()
				if err != nil {
					return err
				}
				row = append(row, cell{kind: CellFaceDown, card: card})
			case 'P':
				row = append(row, cell{kind: CellEmpty})
			default:
				return invariant("unknown stage template cell %q", kind)
			}
		}
		s.rows = append(s.rows, row)
	}

	return nil
}

// IsEmpty reports whether every cell is empty, one of the age-completion
// signals.
func (s *StageController) IsEmpty() bool {
	for _, row := range s.rows {
		for _, c := range row {
			if c.kind != CellEmpty {
				return false
			}
		}
	}
	return true
}

// GetCard looks up a currently face-up card by identifier.
func (s *StageController) GetCard(uid string) (Card, bool) {
	row, col, ok := s.find(uid)
	if !ok {
		return Card{}, false
	}
	return s.rows[row][col].card, true
}

// Discards returns the cards removed from the stage without being granted to
// a player.
func (s *StageController) Discards() []Card {
	return append([]Card(nil), s.discards...)
}

// find locates the face-up cell holding the card with the given identifier.
func (s *StageController) find(uid string) (int, int, bool) {
	for r, row := range s.rows {
		for c, cl := range row {
			if cl.kind == CellFaceUp && cl.card.UID == uid {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// width is the shared row width of the current layout.
func (s *StageController) width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// IsClickable reports whether a face-up card can currently be taken: it is
// in the bottom row, or both cells covering it in the next row are empty.
// The covering pair of (row, col) is (row+1, col) and, by row parity,
// (row+1, col+1) for even rows or (row+1, col-1) for odd rows; the column at
// the relevant edge only needs the first covering cell.
func (s *StageController) IsClickable(uid string) bool {
	row, col, ok := s.find(uid)
	if !ok {
		return false
	}

	if row == len(s.rows)-1 {
		return true
	}

	below := s.rows[row+1]
	if below[col].kind != CellEmpty {
		return false
	}

	if row%2 == 0 {
		return col == s.width()-1 || below[col+1].kind == CellEmpty
	}
	return col == 0 || below[col-1].kind == CellEmpty
}

// Remove empties the cell holding the card and cascades reveals to the two
// cells this cell itself was covering.
func (s *StageController) Remove(uid string) (Card, error) {
	row, col, ok := s.find(uid)
	if !ok {
		return Card{}, ruleViolation("CARD_NOT_FOUND", "card %s is not on the stage", uid)
	}

	card := s.rows[row][col].card
	s.rows[row][col] = cell{kind: CellEmpty}

	s.revealIfAble(row-1, col)
	if row%2 == 0 {
		s.revealIfAble(row-1, col+1)
	} else {
		s.revealIfAble(row-1, col-1)
	}

	return card, nil
}

// Discard removes the card from the stage without granting it to a player,
// records it, and still triggers the reveal cascade.
func (s *StageController) Discard(uid string) (Card, error) {
	card, err := s.Remove(uid)
	if err != nil {
		return Card{}, err
	}
	s.discards = append(s.discards, card)
	return card, nil
}

// revealIfAble flips a face-down cell to face up if every cell covering it
// is empty. Out-of-bounds positions, empty cells and already face-up cells
// are left alone.
func (s *StageController) revealIfAble(row, col int) {
	if row < 0 || col < 0 || row >= len(s.rows) || col >= s.width() {
		return
	}

	if s.rows[row][col].kind != CellFaceDown {
		return
	}

	if row != len(s.rows)-1 {
		below := s.rows[row+1]
		if below[col].kind != CellEmpty {
			return
		}
		if row%2 == 1 && col != 0 {
			if below[col-1].kind != CellEmpty {
				return
			}
		} else if row%2 == 0 && col != s.width()-1 {
			if below[col+1].kind != CellEmpty {
				return
			}
		}
	}

	s.rows[row][col] = cell{kind: CellFaceUp, card: s.rows[row][col].card}
}
