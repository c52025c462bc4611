package dashboard

import (
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/presentation/display"
	"github.com/penwyp/go-timesheet/internal/presentation/interaction"
)

// Screen draws dashboard views
type Screen interface {
	EnterAlternateScreen()
	ExitAlternateScreen()
	Render(view display.View)
}

// KeySource delivers key presses
type KeySource interface {
	Events() <-chan interaction.KeyEvent
	Close() error
}

// JobLoader supplies the current job list
type JobLoader interface {
	Load() []model.Job
}
