package tui

import "github.com/charmbracelet/lipgloss"

// Palette for the table: felt green, card white, casino gold.
const (
	feltColor  = lipgloss.Color("#1B5E20")
	edgeColor  = lipgloss.Color("#2E7D32")
	paperColor = lipgloss.Color("#F5F5F5")
	inkColor   = lipgloss.Color("#212121")
	suitRed    = lipgloss.Color("#C62828")
	goldColor  = lipgloss.Color("#FFC107")
	mutedColor = lipgloss.Color("#757575")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(goldColor).
			Background(feltColor).
			Padding(0, 2).
			Bold(true)

	TableStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(edgeColor).
			Padding(0, 1)

	SeatLabelStyle = lipgloss.NewStyle().
			Foreground(goldColor).
			Bold(true)

	// Card faces: the frame is drawn by CardFrameStyle, pips by the suit colour.
	CardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Background(paperColor).
			Width(cardFaceWidth)

	RedCardStyle   = lipgloss.NewStyle().Foreground(suitRed).Background(paperColor).Bold(true)
	BlackCardStyle = lipgloss.NewStyle().Foreground(inkColor).Background(paperColor).Bold(true)

	// Message rows
	PromptStyle  = lipgloss.NewStyle().Foreground(goldColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66BB6A")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(suitRed).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB74D")).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(mutedColor)
)
