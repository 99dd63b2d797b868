package styles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorRed     = lipgloss.Color("#FF5555")
	ColorGreen   = lipgloss.Color("#50FA7B")
	ColorYellow  = lipgloss.Color("#F1FA8C")
	ColorBlue    = lipgloss.Color("#8BE9FD")
	ColorPurple  = lipgloss.Color("#BD93F9")
	ColorCyan    = lipgloss.Color("#8BE9FD")
	ColorOrange  = lipgloss.Color("#FFB86C")
	ColorPink    = lipgloss.Color("#FF79C6")
	ColorGray    = lipgloss.Color("#6272A4")
	ColorWhite   = lipgloss.Color("#F8F8F2")
	ColorSubtle  = lipgloss.Color("#44475A")
	ColorBg      = lipgloss.Color("#282A36")
	ColorBgLight = lipgloss.Color("#44475A")
	ColorScrim   = lipgloss.Color("#3A3C4A")
)

// Styles contains all the lipgloss styles for the UI
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Control      lipgloss.Style
	Selected     lipgloss.Style
	Normal       lipgloss.Style
	Dimmed       lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
	Error        lipgloss.Style
	CardName     lipgloss.Style
	CardMarker   lipgloss.Style
	City         lipgloss.Style
	State        lipgloss.Style
	MapGlyph     lipgloss.Style
	Image        lipgloss.Style
	Scrim        lipgloss.Style
	Spinner      lipgloss.Style
	SpinnerBox   lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Label        lipgloss.Style
}

// DefaultStyles returns the default styles for the UI
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite),

		Control: lipgloss.NewStyle().
			Foreground(ColorCyan),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Background(ColorBgLight).
			Foreground(ColorWhite),

		Normal: lipgloss.NewStyle().
			Foreground(ColorWhite),

		Dimmed: lipgloss.NewStyle().
			Foreground(ColorGray),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorGray),

		Error: lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true),

		CardName: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite),

		CardMarker: lipgloss.NewStyle().
			Foreground(ColorPurple),

		City: lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorGray).
			Padding(0, 1),

		State: lipgloss.NewStyle().
			Foreground(ColorPink),

		MapGlyph: lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true),

		Image: lipgloss.NewStyle().
			Foreground(ColorOrange),

		Scrim: lipgloss.NewStyle().
			Foreground(ColorScrim).
			Faint(true),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorYellow),

		SpinnerBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 2),

		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Foreground(ColorWhite).
			Align(lipgloss.Center),

		ButtonActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Foreground(ColorPurple).
			Bold(true).
			Align(lipgloss.Center),

		Label: lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(8),
	}
}
