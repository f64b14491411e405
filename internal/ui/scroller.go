package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const scrollFrameInterval = time.Second / 60

// scroller adapts a viewport to the navigator, converting between terminal rows and layout
// units. ScrollTo either jumps straight to the target or eases towards it over several frames.
type scroller struct {
	viewport  viewport.Model
	rowHeight int
	smooth    bool
	target    int
	animating bool
	// animation identifies the running animation so frames from an abandoned one are dropped.
	animation uint64
	startTick bool
}

func newScroller(width int, height int, rowHeight int, smooth bool) *scroller {
	if rowHeight <= 0 {
		rowHeight = 1
	}

	port := viewport.New(width, height)
	port.MouseWheelEnabled = true

	return &scroller{viewport: port, rowHeight: rowHeight, smooth: smooth}
}

// Offset implements nav.Viewport.
func (s *scroller) Offset() int {
	return s.viewport.YOffset * s.rowHeight
}

// ScrollTo implements nav.Viewport.
func (s *scroller) ScrollTo(offset int) {
	row := s.clamp(offset / s.rowHeight)

	if !s.smooth {
		s.stop()
		s.viewport.SetYOffset(row)

		return
	}

	s.target = row
	if !s.animating {
		s.animating = true
		s.animation++
		s.startTick = true
	}
}

// takeTick returns the command starting a newly requested animation, if any.
func (s *scroller) takeTick() tea.Cmd {
	if !s.startTick {
		return nil
	}

	s.startTick = false

	return scrollFrame(scrollFrameInterval, s.animation)
}

// step moves one frame closer to the target. It reports whether the offset changed and returns
// the command for the next frame while the animation is still running.
func (s *scroller) step(animation uint64) (bool, tea.Cmd) {
	if !s.animating || animation != s.animation {
		return false, nil
	}

	current := s.viewport.YOffset
	remaining := s.target - current

	delta := remaining / 4
	if delta == 0 {
		delta = remaining
	}

	s.viewport.SetYOffset(current + delta)
	moved := s.viewport.YOffset != current

	if s.viewport.YOffset == s.target || !moved {
		s.animating = false

		return moved, nil
	}

	return moved, scrollFrame(scrollFrameInterval, s.animation)
}

// stop abandons any running animation, leaving the viewport where it is.
func (s *scroller) stop() {
	if s.animating {
		s.animating = false
		s.animation++
	}

	s.startTick = false
}

// scrollBy moves the viewport by rows, cancelling any animation. It reports whether the offset
// changed.
func (s *scroller) scrollBy(rows int) bool {
	return s.scrollToRow(s.viewport.YOffset + rows)
}

func (s *scroller) scrollToRow(row int) bool {
	s.stop()

	before := s.viewport.YOffset
	s.viewport.SetYOffset(s.clamp(row))

	return s.viewport.YOffset != before
}

func (s *scroller) update(msg tea.Msg) (bool, tea.Cmd) {
	before := s.viewport.YOffset

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)

	if s.viewport.YOffset != before {
		s.stop()

		return true, cmd
	}

	return false, cmd
}

func (s *scroller) maxRow() int {
	return max(0, s.viewport.TotalLineCount()-s.viewport.Height)
}

func (s *scroller) clamp(row int) int {
	return min(max(0, row), s.maxRow())
}

func (s *scroller) resize(width int, height int) {
	s.viewport.Width = width
	s.viewport.Height = height
	s.viewport.SetYOffset(s.clamp(s.viewport.YOffset))
}

func (s *scroller) setContent(content string) {
	s.viewport.SetContent(content)
	s.viewport.SetYOffset(s.clamp(s.viewport.YOffset))
}
