package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — success
	ColorError     = lipgloss.Color("#FF4444") // red    — error
	ColorHex       = lipgloss.Color("#00B4D8") // cyan   — addresses, payloads
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — values
	ColorMeta      = lipgloss.Color("#555555") // dim gray   — labels
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue  — UI chrome
	ColorHighlight = lipgloss.Color("#F15BB5") // pink       — selected rows
	ColorKind      = lipgloss.Color("#9B5DE5") // purple     — validator kinds
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleHex     = lipgloss.NewStyle().Foreground(ColorHex)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleKind    = lipgloss.NewStyle().Foreground(ColorKind).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorKind).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Hex formats an address or payload.
func Hex(h string) string { return StyleHex.Render(h) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats label text.
func Meta(m string) string { return StyleMeta.Render(m) }

// KindName formats a validator kind.
func KindName(k string) string { return StyleKind.Render(k) }

// TruncateHex shortens a long hex blob for display: 0x12345678…9abcdef0.
func TruncateHex(h string) string {
	if len(h) <= 18 {
		return h
	}
	return h[:10] + "…" + h[len(h)-8:]
}
