package interaction

// ActionType is what a key press asks the dashboard to do
type ActionType int

const (
	ActionNone ActionType = iota
	ActionSwitchJob
	ActionEndDay
	ActionReload
	ActionToggleHelp
	ActionQuit
)

// Action is a decoded key press. Job is the zero-based job index for ActionSwitchJob.
type Action struct {
	Type ActionType
	Job  int
}

// ActionFor maps a key to a dashboard action: 1-9 pick a job, e ends the day, r reloads the
// job list, h toggles help, and q, Esc or Ctrl+C quit.
func ActionFor(event KeyEvent) Action {
	switch event.Type {
	case KeyEscape, KeyInterrupt:
		return Action{Type: ActionQuit}
	}

	switch key := event.Key; {
	case key >= '1' && key <= '9':
		return Action{Type: ActionSwitchJob, Job: int(key - '1')}
	case key == 'e' || key == 'E':
		return Action{Type: ActionEndDay}
	case key == 'r' || key == 'R':
		return Action{Type: ActionReload}
	case key == 'h' || key == 'H' || key == '?':
		return Action{Type: ActionToggleHelp}
	case key == 'q' || key == 'Q':
		return Action{Type: ActionQuit}
	default:
		return Action{Type: ActionNone}
	}
}
