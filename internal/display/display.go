// Package display provides unified console output for the adosdlc CLI:
// status lines, bordered panels, and interactive prompts.
package display

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Display handles all CLI output with visual hierarchy
type Display struct {
	theme     *Theme
	termWidth int
	noColor   bool
	stdin     *bufio.Reader
}

// New creates a new Display instance
func New() *Display {
	return NewWithOptions(false)
}

// NewWithOptions creates a Display with configuration
func NewWithOptions(noColor bool) *Display {
	d := &Display{
		termWidth: getTerminalWidth(),
		noColor:   noColor,
		stdin:     bufio.NewReader(os.Stdin),
	}
	if noColor {
		d.theme = NoColorTheme()
	} else {
		d.theme = DefaultTheme()
	}
	return d
}

// getTerminalWidth returns the terminal width, defaulting to 80
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	if width > 120 {
		return 120 // Cap at 120 for readability
	}
	return width
}

// Success prints a success message with green checkmark
func (d *Display) Success(message string) {
	fmt.Printf("%s %s\n", d.theme.Success(SymbolSuccess), d.theme.Text(message))
}

// Error prints an error message with red X
func (d *Display) Error(message string) {
	fmt.Printf("%s %s\n", d.theme.Error("Error:"), d.theme.Text(message))
}

// Warning prints a warning message with yellow triangle
func (d *Display) Warning(message string) {
	fmt.Printf("%s %s\n", d.theme.Warning("Warning:"), d.theme.Text(message))
}

// Info prints an info message with cyan indicator
func (d *Display) Info(message string) {
	fmt.Printf("%s %s\n", d.theme.Info(SymbolInfo), d.theme.Text(message))
}

// Banner prints the tool name and tagline
func (d *Display) Banner(name, tagline string) {
	fmt.Println(d.theme.Title("▶ " + name))
	fmt.Println(d.theme.Dim(tagline))
	fmt.Println()
}

// Panel prints content in a bordered box with a title
func (d *Display) Panel(title, content string) {
	width := d.termWidth - 2
	titleLen := len(title) + 4 // "─ TITLE "
	remainingWidth := width - titleLen
	if remainingWidth < 1 {
		remainingWidth = 1
	}

	top := BoxTopLeft + BoxHorizontal + " " + title + " " + strings.Repeat(BoxHorizontal, remainingWidth) + BoxTopRight
	fmt.Println(d.theme.Border(top))

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		for _, wrapped := range d.wrapLine(line, width-2) {
			fmt.Println(d.theme.Border(BoxVertical) + " " + d.theme.Text(d.padRight(wrapped, width-2)) + " " + d.theme.Border(BoxVertical))
		}
	}

	bottom := BoxBottomLeft + strings.Repeat(BoxHorizontal, width) + BoxBottomRight
	fmt.Println(d.theme.Border(bottom))
}

// Prompt asks the user for a value. Secret input is read without echo.
func (d *Display) Prompt(message string, secret bool) (string, error) {
	fmt.Printf("%s ", d.theme.Bold(message))
	if secret && term.IsTerminal(int(os.Stdin.Fd())) {
		value, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(value)), nil
	}
	line, err := d.stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptChoice asks the user to pick one of the given choices by number
func (d *Display) PromptChoice(message string, choices []string) (string, error) {
	for i, choice := range choices {
		fmt.Printf("  %d. %s\n", i+1, choice)
	}
	for {
		answer, err := d.Prompt(message, false)
		if err != nil {
			return "", err
		}
		idx, err := strconv.Atoi(answer)
		if err == nil && idx >= 1 && idx <= len(choices) {
			return choices[idx-1], nil
		}
		d.Error(fmt.Sprintf("Please select a number between 1 and %d", len(choices)))
	}
}

// wrapLine wraps a single line to the given width at rune boundaries
func (d *Display) wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		maxWidth = 78
	}
	runes := []rune(line)
	if len(runes) <= maxWidth {
		return []string{line}
	}
	var out []string
	for len(runes) > maxWidth {
		out = append(out, string(runes[:maxWidth]))
		runes = runes[maxWidth:]
	}
	out = append(out, string(runes))
	return out
}

// padRight pads a string to the specified width
func (d *Display) padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// Truncate truncates text to max length with ellipsis
func Truncate(s string, max int) string {
	s = CleanText(s)
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// CleanText removes newlines and collapses spaces
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
