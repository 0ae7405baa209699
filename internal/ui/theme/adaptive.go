// Package theme provides adaptive theming for light and dark terminals.
package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive colors that work on both light and dark backgrounds.
// Format: AdaptiveColor{Light: "color for light bg", Dark: "color for dark bg"}
var (
	// Primary brand colors
	Primary      = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#5EEAD4"}
	PrimaryBold  = lipgloss.AdaptiveColor{Light: "#115E59", Dark: "#0F766E"}
	PrimaryMuted = lipgloss.AdaptiveColor{Light: "#14B8A6", Dark: "#134E4A"}

	// Text colors
	Text        = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"}
	TextMuted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	TextDim     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	TextInverse = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#111827"}

	// Background colors
	BgSubtle    = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"}
	BgMuted     = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
	BgHighlight = lipgloss.AdaptiveColor{Light: "#CCFBF1", Dark: "#134E4A"}

	// Status colors
	Success = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	Warning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	Error   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	Info    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

	// Border colors
	Border      = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	BorderFocus = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#5EEAD4"}
)

// Styles provides all application styles using adaptive colors.
type Styles struct {
	// Header and breadcrumbs
	Header       lipgloss.Style
	Crumb        lipgloss.Style
	CrumbActive  lipgloss.Style
	CrumbDivider lipgloss.Style
	SearchButton lipgloss.Style

	// Page body
	PageTitle lipgloss.Style
	PageText  lipgloss.Style
	PageHead  lipgloss.Style
	PageCode  lipgloss.Style

	// Lists
	ListTitle    lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListCursor   lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusKey     lipgloss.Style
	StatusValue   lipgloss.Style
	StatusDivider lipgloss.Style

	// Status indicators
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style

	// Dialogs
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	DialogHint  lipgloss.Style

	// Logs panel
	Logs      lipgloss.Style
	LogsTitle lipgloss.Style

	// Misc
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// DefaultStyles returns the default adaptive styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(BgSubtle).
			Foreground(Text).
			Padding(0, 1),
		Crumb: lipgloss.NewStyle().
			Foreground(Primary).
			Underline(true),
		CrumbActive: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),
		CrumbDivider: lipgloss.NewStyle().
			Foreground(TextDim),
		SearchButton: lipgloss.NewStyle().
			Background(PrimaryBold).
			Foreground(TextInverse).
			Padding(0, 1),

		PageTitle: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1),
		PageText: lipgloss.NewStyle().
			Foreground(Text),
		PageHead: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),
		PageCode: lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(BgSubtle),

		ListTitle: lipgloss.NewStyle().
			Foreground(TextMuted).
			Bold(true),
		ListItem: lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(1),
		ListSelected: lipgloss.NewStyle().
			Foreground(TextInverse).
			Background(Primary).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),
		ListCursor: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(BgSubtle).
			Foreground(TextMuted).
			Padding(0, 2),
		StatusKey: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(TextDim),
		StatusDivider: lipgloss.NewStyle().
			Foreground(Border),

		StatusSuccess: lipgloss.NewStyle().Foreground(Success),
		StatusWarning: lipgloss.NewStyle().Foreground(Warning),
		StatusError:   lipgloss.NewStyle().Foreground(Error),
		StatusInfo:    lipgloss.NewStyle().Foreground(Info),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderFocus).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		DialogHint: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),

		Logs: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		LogsTitle: lipgloss.NewStyle().
			Foreground(TextMuted).
			Bold(true),

		Muted: lipgloss.NewStyle().Foreground(TextMuted),
		Bold:  lipgloss.NewStyle().Bold(true).Foreground(Text),
	}
}
