// Package layout provides responsive layout calculations for the TUI.
package layout

// Dimensions holds the calculated dimensions for each UI region.
type Dimensions struct {
	// Total terminal size
	TermWidth  int
	TermHeight int

	HeaderHeight int
	StatusHeight int

	// Page body (title and text blocks)
	BodyWidth  int
	BodyHeight int

	// Child page list below the body
	ListWidth  int
	ListHeight int

	// Logs panel, zero height when hidden
	LogsWidth  int
	LogsHeight int

	Mode LayoutMode
}

// LayoutMode determines how content is arranged.
type LayoutMode int

const (
	// ModeTooSmall - terminal too small to display anything useful
	ModeTooSmall LayoutMode = iota
	// ModeNormal - header, body, list and footer
	ModeNormal
)

// Constraints define minimum sizes and ratios.
type Constraints struct {
	MinWidth      int     // Minimum usable terminal width
	MinHeight     int     // Minimum usable terminal height
	MinLogsHeight int     // Terminal height needed before logs are shown
	LogsHeight    int     // Fixed logs panel height
	ListRatio     float64 // Share of the content height given to the child list
	MinListHeight int
	HeaderHeight  int // Fixed header height
	StatusHeight  int // Fixed status bar height
}

// DefaultConstraints returns sensible default constraints.
func DefaultConstraints() Constraints {
	return Constraints{
		MinWidth:      30,
		MinHeight:     8,
		MinLogsHeight: 20,
		LogsHeight:    8,
		ListRatio:     0.4,
		MinListHeight: 4,
		HeaderHeight:  1,
		StatusHeight:  1,
	}
}

// Calculate computes layout dimensions based on terminal size and constraints.
func Calculate(width, height int, showLogs bool, c Constraints) Dimensions {
	d := Dimensions{
		TermWidth:    width,
		TermHeight:   height,
		HeaderHeight: c.HeaderHeight,
		StatusHeight: c.StatusHeight,
	}

	if width < c.MinWidth || height < c.MinHeight {
		d.Mode = ModeTooSmall
		return d
	}
	d.Mode = ModeNormal

	// blank line under the header
	content := height - c.HeaderHeight - c.StatusHeight - 1
	if showLogs && height >= c.MinLogsHeight {
		d.LogsWidth = width
		d.LogsHeight = c.LogsHeight
		content -= c.LogsHeight
	}
	content = max(2, content)

	d.ListWidth = width - 2
	d.ListHeight = max(c.MinListHeight, int(float64(content)*c.ListRatio))
	if d.ListHeight > content-1 {
		d.ListHeight = content - 1
	}
	d.BodyWidth = width - 2
	d.BodyHeight = content - d.ListHeight

	return d
}

// CalculateWithDefaults is a convenience function using default constraints.
func CalculateWithDefaults(width, height int, showLogs bool) Dimensions {
	return Calculate(width, height, showLogs, DefaultConstraints())
}
