package display

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/presentation/layout"
	"github.com/penwyp/go-timesheet/internal/util"
)

// MaxJobKeys is how many jobs can be picked with the number keys
const MaxJobKeys = 9

// View is everything the dashboard screen shows
type View struct {
	Jobs          []model.Job
	Current       string
	StartedAt     time.Time
	Now           time.Time
	StatusMessage string
	ShowHelp      bool
}

type TerminalDisplay struct {
	out               io.Writer
	sizer             *layout.Sizer
	inAlternateScreen bool
	isFirstRender     bool
}

func NewTerminalDisplay(out io.Writer, sizer *layout.Sizer) *TerminalDisplay {
	if sizer == nil {
		sizer = layout.NewSizer(0, 0)
	}
	return &TerminalDisplay{
		out:           out,
		sizer:         sizer,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Fprint(td.out, util.EnterAlternateScreen+util.ClearScreen+util.MoveCursorHome+util.HideCursor)
		td.inAlternateScreen = true
		td.isFirstRender = true
	}
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome+util.ShowCursor+util.ExitAlternateScreen)
		td.inAlternateScreen = false
	}
}

// Render redraws the whole dashboard. The first frame clears the screen; later frames
// overwrite in place to avoid flicker.
func (td *TerminalDisplay) Render(view View) {
	var b strings.Builder
	if td.isFirstRender {
		b.WriteString(util.ClearScreen)
		td.isFirstRender = false
	}
	b.WriteString(util.MoveCursorHome)

	lines := td.Lines(view)
	for _, line := range lines {
		b.WriteString(util.ClearLine)
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	b.WriteString("\033[J")

	fmt.Fprint(td.out, b.String())
}

// Lines renders the dashboard as terminal lines
func (td *TerminalDisplay) Lines(view View) []string {
	if view.ShowHelp {
		return td.helpLines()
	}

	width := td.sizer.Width
	lines := []string{
		util.FormatHeaderTitle("go-timesheet"),
		strings.Repeat("═", min(width, 60)),
		"",
		util.ColorBold + FormatStatus(view.Current) + util.ColorReset,
	}

	if details := FormatDetails(view.Current, view.StartedAt, view.Now); details != "" {
		for _, line := range strings.Split(details, "\n") {
			lines = append(lines, util.ColorDim+line+util.ColorReset)
		}
	}
	lines = append(lines, "")

	if len(view.Jobs) == 0 {
		lines = append(lines, "  No jobs configured. Add one with: go-timesheet jobs add NAME")
	}
	buttonWidth := td.buttonWidth(view.Jobs)
	cols, _ := GridShape(len(view.Jobs))
	cols = max(1, min(cols, (width-2)/(buttonWidth+3)))
	for start := 0; start < len(view.Jobs); start += cols {
		row := make([]string, 0, cols)
		for i := start; i < min(start+cols, len(view.Jobs)); i++ {
			job := view.Jobs[i]
			row = append(row, JobButton(i, job, view.Current == job.Name, buttonWidth))
		}
		lines = append(lines, "  "+strings.Join(row, " "))
	}

	lines = append(lines, "")
	lines = append(lines, util.ColorDim+"1-9 switch · e end day · r reload · h help · q quit"+util.ColorReset)

	if view.StatusMessage != "" {
		for _, line := range wrapText(view.StatusMessage, max(width-4, 20)) {
			lines = append(lines, util.ColorYellow+"  "+line+util.ColorReset)
		}
	}
	return lines
}

func (td *TerminalDisplay) buttonWidth(jobs []model.Job) int {
	width := 0
	for _, job := range jobs {
		width = max(width, util.GetDisplayWidth(job.Name))
	}
	// "[n] " prefix plus a space either side
	width += 6
	return min(width, max(td.sizer.Width-4, 10))
}

// GridShape returns the near-square grid jobs are laid out in: ceil(sqrt(n)) columns
func GridShape(n int) (cols, rows int) {
	if n <= 0 {
		return 1, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// JobButton draws one job as a colored block with a contrasting label. Jobs past the ninth
// have no key.
func JobButton(index int, job model.Job, active bool, width int) string {
	key := "   "
	if index < MaxJobKeys {
		key = fmt.Sprintf("[%d]", index+1)
	}
	label := util.PadString(fmt.Sprintf(" %s %s", key, job.Name), width, true)

	marker := "  "
	if active {
		marker = "▶ "
	}

	bg := util.BackgroundHex(job.Color)
	if bg == "" {
		return marker + label
	}
	fg, err := color.ContrastingTextColor(job.Color)
	if err != nil {
		fg = color.TextDark
	}
	return marker + bg + util.ForegroundName(fg) + label + util.ColorReset
}

func (td *TerminalDisplay) helpLines() []string {
	return []string{
		util.FormatHeaderTitle("go-timesheet - Help"),
		strings.Repeat("═", min(td.sizer.Width, 60)),
		"",
		"Keyboard Shortcuts:",
		"",
		"  1-9          - Switch to the numbered job",
		"  e            - End the day and quit",
		"  r            - Reload the job list",
		"  h            - Show this help",
		"  q/Esc/Ctrl+C - Quit without ending the day",
		"",
		"Each switch is written to the history file immediately.",
		"Edit the job list with: go-timesheet jobs add|remove|color|rename",
		"",
		strings.Repeat("═", min(td.sizer.Width, 60)),
		"Press 'h' to return...",
	}
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{}
	}

	if util.GetDisplayWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		if currentLine == "" {
			currentLine = word
		} else if util.GetDisplayWidth(currentLine)+1+util.GetDisplayWidth(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
