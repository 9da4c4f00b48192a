package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	choiceNumStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	choiceNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// ChoicePrompt presents a numbered list of choices and reads a selection
type ChoicePrompt struct {
	Choices []string
}

// PrintChoices writes the numbered choice list
func (p *ChoicePrompt) PrintChoices(w io.Writer) {
	for i, choice := range p.Choices {
		num := choiceNumStyle.Render(fmt.Sprintf("%d.", i+1))
		fmt.Fprintf(w, "%s %s\n", num, choiceNameStyle.Render(choice))
	}
}

// Ask prompts until the reader supplies a valid choice number and returns
// the selected choice. EOF or a read failure aborts with an error.
func (p *ChoicePrompt) Ask(r io.Reader, w io.Writer, prompt string) (string, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s: ", promptStyle.Render(prompt))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read selection: %w", err)
			}
			return "", fmt.Errorf("no selection made")
		}

		input := strings.TrimSpace(scanner.Text())
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(p.Choices) {
			fmt.Fprintf(w, "Invalid choice %q. Enter a number between 1 and %d.\n", input, len(p.Choices))
			continue
		}
		return p.Choices[n-1], nil
	}
}
