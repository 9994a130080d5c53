package session

import (
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	codeFrame    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	execFrame    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func (s *Session) printBanner() {
	fmt.Fprintln(s.out, bannerStyle.Render("===================================="))
	fmt.Fprintln(s.out, bannerStyle.Render("        PYTHON MAKER BOT            "))
	fmt.Fprintln(s.out, bannerStyle.Render("===================================="))
	fmt.Fprintln(s.out, taglineStyle.Render(" AI-Powered Python Code Generator"))
	fmt.Fprintln(s.out, dimStyle.Render(" Type /help for commands or /quit to exit"))
	fmt.Fprintln(s.out)
}

// printCode renders generated Python with syntax highlighting, falling back
// to plain text when the terminal cannot be driven.
func (s *Session) printCode(code string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, codeFrame.Render("━━━━━━━━━━━ Generated Code ━━━━━━━━━━━"))

	if err := quick.Highlight(s.out, code+"\n", "python", "terminal256", "monokai"); err != nil {
		fmt.Fprintln(s.out, code)
	}

	fmt.Fprintln(s.out, codeFrame.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
	fmt.Fprintln(s.out)
}

func (s *Session) printExecution(scriptPath, stdout, stderr string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, execFrame.Render("━━━━━━━━━━━ Execution Result ━━━━━━━━━━━"))
	fmt.Fprintln(s.out, dimStyle.Render("Script saved at: "+scriptPath))

	if stdout != "" {
		fmt.Fprintln(s.out, okStyle.Render("STDOUT:"))
		fmt.Fprintln(s.out, stdout)
	}
	if stderr != "" {
		fmt.Fprintln(s.out, errStyle.Render("STDERR:"))
		fmt.Fprintln(s.out, stderr)
	}

	fmt.Fprintln(s.out, execFrame.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headerStyle.Render("Available Commands:"))
	fmt.Fprintln(s.out, "  "+okStyle.Render("/quit, /exit")+"  - Exit the program")
	fmt.Fprintln(s.out, "  "+okStyle.Render("/help")+"         - Show this help")
	fmt.Fprintln(s.out, "  "+okStyle.Render("/clear")+"        - Clear conversation history")
	fmt.Fprintln(s.out, "  "+okStyle.Render("/refine")+"       - Refine the last generated code")
	fmt.Fprintln(s.out, "  "+okStyle.Render("/save <file>")+"  - Save last code to a file")
	fmt.Fprintln(s.out, "  "+okStyle.Render("/history")+"      - Show conversation history")
	fmt.Fprintln(s.out, "  "+okStyle.Render("/stats")+"        - Show session statistics")
	fmt.Fprintln(s.out)
}

func (s *Session) printStats() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headerStyle.Render("Session Statistics:"))
	fmt.Fprintf(s.out, "  Requests:               %d\n", s.stats.Requests)
	fmt.Fprintf(s.out, "  API errors:             %d\n", s.stats.APIErrors)
	fmt.Fprintf(s.out, "  Successful executions:  %d\n", s.stats.SuccessfulExecutions)
	fmt.Fprintf(s.out, "  Failed executions:      %d\n", s.stats.FailedExecutions)
	fmt.Fprintln(s.out)
}

func preview(content string, max int) string {
	if len(content) > max {
		return content[:max] + "..."
	}

	return content
}
