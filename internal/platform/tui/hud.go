package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/games/outrun"
)

// HUD is the terminal UI collaborator: it keeps the last score, lives and
// game-over values pushed by the session.
type HUD struct {
	maxLives   int
	score      int
	lives      int
	gameOver   bool
	finalScore int
}

var _ outrun.UI = (*HUD)(nil)

// NewHUD creates a HUD that draws up to maxLives hearts.
func NewHUD(maxLives int) *HUD {
	return &HUD{maxLives: maxLives, lives: maxLives}
}

func (h *HUD) ShowScore(score int) { h.score = score }
func (h *HUD) ShowLives(lives int) { h.lives = lives }

func (h *HUD) ShowGameOver(finalScore int) {
	h.gameOver = true
	h.finalScore = finalScore
}

// Reset clears the game-over state before a new session starts.
func (h *HUD) Reset() {
	h.score = 0
	h.lives = h.maxLives
	h.gameOver = false
	h.finalScore = 0
}

func (h *HUD) Score() int      { return h.score }
func (h *HUD) Lives() int      { return h.lives }
func (h *HUD) GameOver() bool  { return h.gameOver }
func (h *HUD) FinalScore() int { return h.finalScore }

// View renders the status bar: score on the left, hearts on the right.
func (h *HUD) View(width int) string {
	left := scoreStyle.Render(fmt.Sprintf("SCORE %d", h.score))

	lost := max(h.maxLives-h.lives, 0)
	right := livesStyle.Render(strings.Repeat("♥", max(h.lives, 0))) +
		lostLifeStyle.Render(strings.Repeat("♡", lost))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// StatusLine renders the game-over banner, or "" while playing.
func (h *HUD) StatusLine() string {
	if !h.gameOver {
		return ""
	}
	return gameOverStyle.Render(fmt.Sprintf("GAME OVER  final score %d", h.finalScore)) +
		"  " + hintStyle.Render("r restart • q quit")
}
