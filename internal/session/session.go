// Package session implements the interactive code generation loop: prompt,
// generate, display, optionally execute.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"pymaker/internal/executor"
	"pymaker/internal/hf"
	"pymaker/internal/metrics"
	"pymaker/internal/pycode"
	"pymaker/internal/sessionlog"
)

// Stats counts what happened during a session, displayed by /stats and on
// exit.
type Stats struct {
	Requests             int
	APIErrors            int
	SuccessfulExecutions int
	FailedExecutions     int
}

// Session drives one interactive conversation.
type Session struct {
	gen      Generator
	exec     *executor.Executor
	log      *sessionlog.Logger
	prompter Prompter
	out      io.Writer

	stats    Stats
	lastCode string
}

func New(gen Generator, exec *executor.Executor, log *sessionlog.Logger, prompter Prompter, out io.Writer) *Session {
	return &Session{
		gen:      gen,
		exec:     exec,
		log:      log,
		prompter: prompter,
		out:      out,
	}
}

// Run loops until the user quits or input is closed. Per-request API errors
// are reported and counted, they never end the session.
func (s *Session) Run(ctx context.Context) error {
	s.printBanner()

	for {
		line, err := s.prompter.ReadLine(">")
		if err != nil {
			// Interrupt or closed input ends the session cleanly.
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if s.handleLine(ctx, line) {
			break
		}
	}

	fmt.Fprintln(s.out, dimStyle.Render("Session ended."))
	s.printStats()

	return nil
}

// Stats returns a copy of the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// handleLine dispatches one input line. It returns true when the session
// should end.
func (s *Session) handleLine(ctx context.Context, line string) bool {
	switch {
	case line == "/quit" || line == "/exit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true

	case line == "/help":
		s.printHelp()

	case line == "/stats":
		s.printStats()

	case line == "/clear":
		s.gen.Reset()
		s.lastCode = ""
		fmt.Fprintln(s.out, okStyle.Render("✓ Conversation history cleared."))

	case line == "/history":
		s.showHistory()

	case strings.HasPrefix(line, "/save"):
		s.saveLastCode(line)

	case line == "/refine":
		s.refine(ctx)

	default:
		s.generate(ctx, line)
	}

	return false
}

func (s *Session) showHistory() {
	history := s.gen.History()

	shown := 0

	for _, msg := range history {
		// The system instruction is plumbing, not conversation.
		if msg.Role == hf.RoleSystem {
			continue
		}

		if shown == 0 {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, headerStyle.Render("Conversation History:"))
		}

		shown++

		role := "user"
		if msg.Role == hf.RoleAi {
			role = "assistant"
		}

		fmt.Fprintf(s.out, "\n%d. [%s]\n", shown, role)
		fmt.Fprintln(s.out, dimStyle.Render(preview(msg.Content, 100)))
	}

	if shown == 0 {
		fmt.Fprintln(s.out, warnStyle.Render("No conversation history yet."))
		return
	}

	fmt.Fprintln(s.out)
}

func (s *Session) saveLastCode(line string) {
	if s.lastCode == "" {
		fmt.Fprintln(s.out, warnStyle.Render("No code to save. Generate some code first!"))
		return
	}

	filename := ""
	if parts := strings.Fields(line); len(parts) > 1 {
		filename = parts[1]
	} else {
		filename, _ = s.prompter.Input("Enter filename (e.g., script.py):", "")
	}

	if filename == "" {
		fmt.Fprintln(s.out, warnStyle.Render("Save cancelled."))
		return
	}

	if err := os.WriteFile(filename, []byte(s.lastCode), 0o644); err != nil {
		fmt.Fprintln(s.out, errStyle.Render("✗ Failed to save file: "+err.Error()))
		return
	}

	fmt.Fprintln(s.out, okStyle.Render("✓ Code saved to: ")+filename)
}

func (s *Session) refine(ctx context.Context) {
	if s.lastCode == "" {
		fmt.Fprintln(s.out, warnStyle.Render("No code to refine. Generate some code first!"))
		return
	}

	refinement, err := s.prompter.Input("What would you like to change or add?", "")
	if err != nil || strings.TrimSpace(refinement) == "" {
		return
	}

	s.generate(ctx, "Please refine the previous code: "+refinement)
}

func (s *Session) generate(ctx context.Context, prompt string) {
	s.log.Request(prompt)
	s.stats.Requests++
	metrics.IncAPIRequest()

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.stats.APIErrors++
		metrics.IncAPIError()
		s.log.Error(err)
		fmt.Fprintln(s.out, errStyle.Render("✗ API error: "+err.Error()))
		return
	}

	s.log.Response(raw)

	code := pycode.Extract(raw)
	s.lastCode = code

	s.printCode(code)

	run, err := s.prompter.Confirm("Execute this script?", false)
	if err != nil || !run {
		return
	}

	s.execute(ctx, code)
}

func (s *Session) execute(ctx context.Context, code string) {
	if deps := pycode.ThirdParty(code); len(deps) > 0 {
		fmt.Fprintln(s.out, warnStyle.Render("Detected non-standard dependencies: "+strings.Join(deps, ", ")))

		if install, _ := s.prompter.Confirm("Install these dependencies?", false); install {
			if err := s.exec.InstallPackages(ctx, deps); err != nil {
				fmt.Fprintln(s.out, warnStyle.Render("Failed to install dependencies: "+err.Error()))
				fmt.Fprintln(s.out, dimStyle.Render("Proceeding anyway..."))
			}
		}
	}

	result, err := s.exec.WriteAndRun(ctx, code)
	if err != nil {
		s.stats.FailedExecutions++
		metrics.IncExecution(false)
		s.log.Error(err)
		fmt.Fprintln(s.out, errStyle.Render("✗ Execution error: "+err.Error()))
		return
	}

	success := result.Stderr == "" || !strings.Contains(result.Stderr, "Error")
	if success {
		s.stats.SuccessfulExecutions++
	} else {
		s.stats.FailedExecutions++
	}

	metrics.IncExecution(success)
	s.log.Execution(success, result.Stdout)

	s.printExecution(result.ScriptPath, result.Stdout, result.Stderr)
}
