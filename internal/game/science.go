package game

import "math/rand"

// boardSize is the number of progress tokens revealed on the shared board.
const boardSize = 5

// ScienceTokenController reveals a random subset of the token catalogue on
// the shared board. The remaining tokens stay in an unexposed reserve.
type ScienceTokenController struct {
	reserve []ScienceToken
	board   []ScienceToken
	rng     *rand.Rand
}

// NewScienceTokenController creates a controller with an empty board.
func NewScienceTokenController(rng *rand.Rand) *ScienceTokenController {
	return &ScienceTokenController{rng: rng}
}

// Reset draws five distinct tokens without replacement from the ten-member
// catalogue onto the board.
func (s *ScienceTokenController) Reset() error {
	s.reserve = append([]ScienceToken(nil), allScienceTokens...)
	s.board = make([]ScienceToken, 0, boardSize)
	for i := 0; i < boardSize; i++ {
		token, err := s.nextToken()
		if err != nil {
			return err
		}
		s.board = append(s.board, token)
	}
	return nil
}

// Board returns a copy of the revealed tokens.
func (s *ScienceTokenController) Board() []ScienceToken {
	return append([]ScienceToken(nil), s.board...)
}

// ReserveCount returns how many tokens remain unexposed.
func (s *ScienceTokenController) ReserveCount() int {
	return len(s.reserve)
}

// Token returns the board token at the given slot.
func (s *ScienceTokenController) Token(index int) (ScienceToken, error) {
	if index < 0 || index >= len(s.board) {
		return 0, ruleViolation("TOKEN_OUT_OF_RANGE", "no science token at slot %d", index)
	}
	return s.board[index], nil
}

func (s *ScienceTokenController) nextToken() (ScienceToken, error) {
	if len(s.reserve) == 0 {
		return 0, invariant("no more science tokens in the supply")
	}

	i := s.rng.Intn(len(s.reserve))
	token := s.reserve[i]
	s.reserve = append(s.reserve[:i], s.reserve[i+1:]...)
	return token, nil
}
