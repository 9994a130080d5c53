// pymaker talks to the HuggingFace inference router. By default it performs a
// single inference request and pretty-prints the JSON response; with -repl it
// starts an interactive Python code generation session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"

	"pymaker/internal/credential"
	"pymaker/internal/executor"
	"pymaker/internal/hf"
	"pymaker/internal/metrics"
	"pymaker/internal/session"
	"pymaker/internal/sessionlog"
)

type config struct {
	model         string
	prompt        string
	repl          bool
	metricsListen string
	generatedDir  string
	logsDir       string
}

func main() {
	var cfg config

	flag.StringVar(&cfg.model, "model", "", "model to query (defaults depend on the mode)")
	flag.StringVar(&cfg.prompt, "prompt", "Write a Python script that prints 'hello'", "prompt for single-shot mode")
	flag.BoolVar(&cfg.repl, "repl", false, "start the interactive code generation session")
	flag.StringVar(&cfg.metricsListen, "metrics-listen", "", "expose Prometheus metrics on this address")
	flag.StringVar(&cfg.generatedDir, "generated-dir", "generated", "directory for generated scripts")
	flag.StringVar(&cfg.logsDir, "logs-dir", "logs", "directory for session logs")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "pymaker:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	token, err := credential.Resolve()
	if err != nil {
		return errors.Wrap(err, "credential resolution failed")
	}

	if cfg.repl {
		return runSession(ctx, token, cfg)
	}

	return runOnce(ctx, token, cfg)
}

// runOnce performs one inference request and prints the JSON response.
func runOnce(ctx context.Context, token string, cfg config) error {
	client, err := hf.New(hf.WithApiKey(token))
	if err != nil {
		return err
	}

	resp, err := client.Infer(ctx, hf.InferRequest{
		Inputs: cfg.prompt,
		Model:  cfg.model,
	})

	switch {
	case errors.Is(err, hf.ErrTransport):
		return errors.Wrap(err, "request failed")
	case errors.Is(err, hf.ErrParse):
		return errors.Wrap(err, "could not parse response")
	case err != nil:
		return err
	}

	pretty, err := resp.Pretty()
	if err != nil {
		return errors.Wrap(err, "could not parse response")
	}

	fmt.Println(pretty)

	return nil
}

func runSession(ctx context.Context, token string, cfg config) error {
	client, err := hf.New(
		hf.WithApiKey(token),
		hf.WithDefaultModel(cfg.model),
		hf.WithSaveContext(),
	)
	if err != nil {
		return err
	}

	exec, err := executor.New(cfg.generatedDir)
	if err != nil {
		return err
	}

	log, err := sessionlog.New(cfg.logsDir)
	if err != nil {
		return err
	}
	defer log.Close()

	metrics.Start(ctx, cfg.metricsListen, log.Zap())

	s := session.New(
		session.NewChatGenerator(client),
		exec,
		log,
		session.SurveyPrompter{},
		os.Stdout,
	)

	return s.Run(ctx)
}
