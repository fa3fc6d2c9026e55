package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	g4fclient "github.com/haowjy/meridian-g4f-go"
	"github.com/haowjy/meridian-g4f-go/internal/config"
)

type askOptions struct {
	InputFile    string
	Stream       bool
	NoStream     bool
	Model        string
	Provider     string
	URL          string
	APIKey       string
	WebSearch    bool
	AutoContinue bool
}

func newAskCmd() *cobra.Command {
	opts := &askOptions{}
	cmd := &cobra.Command{
		Use:   "ask [prompt...]",
		Short: "Send one prompt and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.InputFile, "file", "F", "", "prompt file, use -F- for stdin")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "print fragments as they arrive")
	cmd.Flags().BoolVar(&opts.NoStream, "no-stream", false, "wait for the full response")
	cmd.Flags().StringVar(&opts.Model, "model", "", "override model name")
	cmd.Flags().StringVar(&opts.Provider, "provider", "", "override backend provider")
	cmd.Flags().StringVar(&opts.URL, "url", "", "override backend base url")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "override api key")
	cmd.Flags().BoolVar(&opts.WebSearch, "web-search", false, "enable web search")
	cmd.Flags().BoolVar(&opts.AutoContinue, "auto-continue", true, "let the backend continue truncated answers")
	return cmd
}

func runAsk(cmd *cobra.Command, opts *askOptions, args []string) error {
	if opts.Stream && opts.NoStream {
		return errors.New("only one of --stream or --no-stream can be set")
	}

	prompt, err := readPrompt(args, opts.InputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(prompt) == "" {
		return errors.New("prompt is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The flag defaults on; an explicit config value applies only when
	// the flag was not set on the command line.
	if !cmd.Flags().Changed("auto-continue") && viper.IsSet("chat.auto_continue") {
		opts.AutoContinue = cfg.Chat.AutoContinue
	}

	conversation, params := buildConversation(cfg, opts)

	charmlog.Debug("sending prompt",
		"model", params.Model,
		"provider", params.Provider,
		"web_search", params.WebSearch,
		"stream", opts.Stream,
	)

	if opts.Stream {
		return streamResponse(cmd.Context(), cmd.OutOrStdout(), conversation, prompt, params)
	}

	response, err := conversation.EnterPrompt(cmd.Context(), prompt, params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), response)
	return err
}

// buildConversation merges flag overrides over the loaded config and wires
// up the client.
func buildConversation(cfg config.Config, opts *askOptions) (*g4fclient.Conversation, g4fclient.PromptParams) {
	clientCfg := g4fclient.ClientConfig{
		BaseURL: firstNonEmpty(opts.URL, cfg.Backend.URL),
	}
	if cfg.Backend.TimeoutSeconds > 0 {
		clientCfg.Timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	}

	params := g4fclient.PromptParams{
		Model:        firstNonEmpty(opts.Model, cfg.Chat.Model),
		WebSearch:    opts.WebSearch || cfg.Chat.WebSearch,
		Provider:     firstNonEmpty(opts.Provider, cfg.Chat.Provider),
		AutoContinue: opts.AutoContinue,
	}
	if key := firstNonEmpty(opts.APIKey, cfg.Chat.APIKey); key != "" {
		params.APIKey = &key
	}

	return g4fclient.NewConversation(g4fclient.NewClient(clientCfg)), params
}

func streamResponse(ctx context.Context, out io.Writer, conversation *g4fclient.Conversation, prompt string, params g4fclient.PromptParams) error {
	stream, err := conversation.EnterPromptStream(ctx, prompt, params)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		fragment, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(out, fragment); err != nil {
			return err
		}
	}
}

func readPrompt(args []string, inputFile string, stdin io.Reader) (string, error) {
	if inputFile != "" && len(args) > 0 {
		return "", errors.New("prompt args and -F are mutually exclusive")
	}
	if inputFile == "" {
		if len(args) == 0 {
			return "", errors.New("missing prompt: provide args or -F")
		}
		return strings.Join(args, " "), nil
	}
	if inputFile == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return trimTrailingNewline(string(data)), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(value string) string {
	return strings.TrimRight(value, "\r\n")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
