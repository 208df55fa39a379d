package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// sizer is implemented by models that track the terminal size.
type sizer interface {
	Size() (width, height int)
}

// Runner runs Bubble Tea programs one after another on the same terminal
// and remembers the terminal size between them.
type Runner struct {
	opts []tea.ProgramOption

	mu      sync.Mutex
	current *tea.Program
	width   int
	height  int
}

// NewRunner creates a runner for a terminal of the given size. opts are
// applied to every program (alternate screen, session I/O).
func NewRunner(width, height int, opts ...tea.ProgramOption) *Runner {
	return &Runner{
		opts:   opts,
		width:  width,
		height: height,
	}
}

// Size returns the last known terminal size.
func (r *Runner) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Resize records a new terminal size and forwards it to the running
// program, if any.
func (r *Runner) Resize(width, height int) {
	r.mu.Lock()
	r.width, r.height = width, height
	p := r.current
	r.mu.Unlock()

	if p != nil {
		p.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// Run runs m until it quits and returns the final model. Cancelling ctx
// kills the program and returns ctx's error.
func (r *Runner) Run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.opts...)
	p := tea.NewProgram(m, opts...)

	r.mu.Lock()
	r.current = p
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.current = nil
		r.mu.Unlock()
	}()

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return final, ctxErr
		}
		return final, fmt.Errorf("tui: %w", err)
	}

	if s, ok := final.(sizer); ok {
		if w, h := s.Size(); w > 0 && h > 0 {
			r.mu.Lock()
			r.width, r.height = w, h
			r.mu.Unlock()
		}
	}
	return final, nil
}
