package game

import "fmt"

// View is a read-only snapshot of everything the renderer draws
type View struct {
	Variant          Variant
	Score            int
	TimeRemaining    int
	GameOver         bool
	Instruction      string
	ScoreText        string
	TimerText        string
	Tiles            []Tile
	IntrusionVisible bool
	Restartable      bool
}

// FinalScoreText is the game over score line
func (v View) FinalScoreText() string {
	return fmt.Sprintf("Final Score: %d", v.Score)
}

// View snapshots the session for rendering and hit-testing
func (s *Session) View() View {
	return View{
		Variant:          s.rules.Variant,
		Score:            s.score,
		TimeRemaining:    s.timeLeft,
		GameOver:         s.gameOver,
		Instruction:      s.instruction,
		ScoreText:        s.scoreText,
		TimerText:        s.timerText,
		Tiles:            s.Tiles(),
		IntrusionVisible: s.intrusion,
		Restartable:      s.gameOver && s.rounds > 0,
	}
}
