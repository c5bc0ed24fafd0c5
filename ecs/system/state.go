package system

// GameState is the per-session scalar state shared by the systems. The
// caller owns it and hands the same pointer to every system.
type GameState struct {
	CameraX  float64
	CameraY  float64
	Score    int
	Lives    int
	GameOver bool
}

func NewGameState(lives int) *GameState {
	s := &GameState{}
	s.Reset(lives)
	return s
}

// Reset starts a new game with the given number of lives.
func (s *GameState) Reset(lives int) {
	if s == nil {
		return
	}
	*s = GameState{Lives: lives, GameOver: lives <= 0}
}

// LoseLife removes one life and reports whether the game is now over.
func (s *GameState) LoseLife() bool {
	if s == nil {
		return false
	}
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives <= 0 {
		s.GameOver = true
	}
	return s.GameOver
}

// Playing reports whether gameplay systems should advance.
func (s *GameState) Playing() bool {
	return s != nil && !s.GameOver
}
