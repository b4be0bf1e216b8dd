package core

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/hamidzr/movebox/model"
)

const (
	// config sizes are in pixels; the terminal track is in columns
	pixelsPerColumn  = 10
	pixelsPerPadding = 8
	minBoxColumns    = 3
	boxRows          = 2
)

// terminalScene is the text rendition of the track. It is the geometry
// provider, display and animated element for terminal mode at once.
type terminalScene struct {
	mu          sync.Mutex
	columns     int
	left, right int
	boxColumns  int
	x           float32

	coordinate string
	width      string
	status     string
}

func newTerminalScene(columns int, cfg *model.Config) *terminalScene {
	s := &terminalScene{
		columns:    columns,
		left:       max(1, roundColumns(cfg.PaddingLeft, pixelsPerPadding)),
		right:      max(1, roundColumns(cfg.PaddingRight, pixelsPerPadding)),
		boxColumns: max(minBoxColumns, roundColumns(cfg.ElementWidth, pixelsPerColumn)),
		coordinate: "-",
		width:      "-",
		status:     model.StatusStationary,
	}
	s.x = float32(s.left)
	return s
}

func roundColumns(pixels float32, scale int) int {
	return int(math.Round(float64(pixels) / float64(scale)))
}

func (s *terminalScene) ContainerWidth() float32 {
	return float32(s.columns)
}

func (s *terminalScene) ContainerPadding() (float32, float32) {
	return float32(s.left), float32(s.right)
}

func (s *terminalScene) ElementWidth() float32 {
	return float32(s.boxColumns)
}

func (s *terminalScene) ElementX() float32 {
	return s.X()
}

func (s *terminalScene) X() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x
}

func (s *terminalScene) MoveX(x float32) {
	s.mu.Lock()
	s.x = x
	s.mu.Unlock()
}

func (s *terminalScene) SetCoordinate(text string) {
	s.mu.Lock()
	s.coordinate = text
	s.mu.Unlock()
}

func (s *terminalScene) SetWidth(text string) {
	s.mu.Lock()
	s.width = text
	s.mu.Unlock()
}

func (s *terminalScene) SetStatus(text string) {
	s.mu.Lock()
	s.status = text
	s.mu.Unlock()
}

// Frame renders the whole screen, one string per line.
func (s *terminalScene) Frame() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := renderTrack(s.columns, int(math.Round(float64(s.x))), s.boxColumns)
	lines = append(lines,
		fmt.Sprintf(" X: %s  Width: %s  Status: %s", s.coordinate, s.width, s.status),
		" space/enter: move  q: quit",
	)
	return lines
}

// renderTrack draws a bordered track columns wide with the box starting at
// column x. Box cells never overwrite the border.
func renderTrack(columns, x, boxColumns int) []string {
	if columns < 2 {
		return nil
	}
	inner := columns - 2
	lines := make([]string, 0, boxRows+2)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")

	row := make([]rune, columns)
	for i := range row {
		row[i] = ' '
	}
	row[0], row[columns-1] = '│', '│'
	for c := model.Clamp(x, 1, columns-1); c < model.Clamp(x+boxColumns, 1, columns-1); c++ {
		row[c] = '█'
	}
	for i := 0; i < boxRows; i++ {
		lines = append(lines, string(row))
	}

	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return lines
}
