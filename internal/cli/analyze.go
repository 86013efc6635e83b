package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/ai/providers"
	"github.com/yildizm/mahoraga/internal/config"
	"github.com/yildizm/mahoraga/internal/formatter"
	"github.com/yildizm/mahoraga/internal/logger"
	"github.com/yildizm/mahoraga/internal/ui"
)

// maxPromptBytes bounds what is read from stdin
const maxPromptBytes = 1 << 20

var (
	analyzeProvider string
	analyzeOutput   string
	analyzeTimeout  time.Duration
)

// newAnalyzer builds the backend for one-shot analysis; tests replace it
var newAnalyzer providers.Factory = providers.New

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [prompt|-]",
		Short: "Analyze a single prompt and print the report",
		Long: `Analyze a single prompt without opening the interactive analyzer.

The prompt is taken from the argument, or from stdin when the argument is "-"
or missing. MAHORAGA_* environment variables override the config file for this
run only.

Examples:
  mahoraga analyze "Write a haiku about databases"
  cat prompt.txt | mahoraga analyze -
  mahoraga analyze --provider anthropic --output json "Summarize this thread"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeProvider, "provider", "p", "", "backend to use for this run (azure, openai, anthropic)")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", formatter.FormatText, "output format ("+strings.Join(formatter.Formats(), ", ")+")")
	cmd.Flags().DurationVar(&analyzeTimeout, "timeout", 60*time.Second, "analysis timeout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger.NewWithCallback("analyze", isVerbose)

	prompt, err := readPrompt(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if analyzeProvider != "" {
		p, err := config.ParseProvider(analyzeProvider)
		if err != nil {
			return err
		}
		cfg.Provider.Active = p
	}

	out := cmd.OutOrStdout()
	f, err := formatter.New(analyzeOutput, useColor(out))
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return explain(err, cfg)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	requestID := uuid.NewString()
	ctx = ai.WithRequestID(ctx, requestID)

	if isVerbose() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing with %s (request %s)...\n", cfg.Provider.Active.DisplayName(), requestID)
	}

	started := time.Now()
	result, err := analyzer.Analyze(ctx, prompt)
	elapsed := time.Since(started)
	if err != nil {
		log.WarnWithFields("analysis failed", []logger.Field{
			logger.F("request_id", requestID),
			logger.Duration(elapsed),
			logger.Error(err),
		})
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("analysis timed out after %s", analyzeTimeout)
		}
		return explain(err, cfg)
	}
	if result == nil {
		return errors.New("analysis returned no result")
	}

	log.InfoWithFields("analysis completed", []logger.Field{
		logger.F("request_id", requestID),
		logger.Duration(elapsed),
		logger.F("score", result.Score),
	})

	data, err := f.Format(&formatter.Report{
		Provider:  cfg.Provider.Active.DisplayName(),
		Model:     activeModel(cfg),
		RequestID: requestID,
		Prompt:    prompt,
		Elapsed:   elapsed,
		Result:    result,
	})
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, _ = io.WriteString(out, "\n")
	}
	return nil
}

// explain adds the next step to errors the user can fix themselves
func explain(err error, cfg *config.Config) error {
	switch {
	case ai.IsConfigurationError(err):
		return fmt.Errorf("%w (configure it with /settings in mahoraga or the MAHORAGA_* environment variables)", err)
	case ai.IsAuthenticationError(err):
		return fmt.Errorf("%w (check the %s API key)", err, cfg.Provider.Active.DisplayName())
	default:
		return err
	}
}

// readPrompt takes the prompt from the argument, or from in for "-" or no
// argument. An interactive stdin with no argument is refused rather than
// waited on.
func readPrompt(args []string, in io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return nonEmptyPrompt(args[0])
	}

	if len(args) == 0 {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", errors.New("no prompt given: pass it as an argument or pipe it on stdin")
		}
	}

	data, err := io.ReadAll(io.LimitReader(in, maxPromptBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	if len(data) > maxPromptBytes {
		return "", fmt.Errorf("prompt exceeds %d bytes", maxPromptBytes)
	}
	return nonEmptyPrompt(string(data))
}

func nonEmptyPrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt is empty")
	}
	return prompt, nil
}

// useColor reports whether w is a terminal that should receive ANSI colors
func useColor(w io.Writer) bool {
	if noColor || ui.IsColorDisabled() {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// activeModel names the model or deployment the active backend will call
func activeModel(cfg *config.Config) string {
	switch cfg.Provider.Active {
	case config.ProviderAzure:
		return cfg.Azure.Deployment
	case config.ProviderOpenAI:
		return cfg.OpenAI.Model
	case config.ProviderAnthropic:
		return cfg.Anthropic.Model
	default:
		return ""
	}
}
