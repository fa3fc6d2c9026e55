package cli

import (
	"bufio"
	"fmt"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haowjy/meridian-g4f-go/internal/config"
)

type chatOptions struct {
	Model        string
	Provider     string
	URL          string
	APIKey       string
	AutoContinue bool
}

func newChatCmd() *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive prompt loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Model, "model", "", "override model name")
	cmd.Flags().StringVar(&opts.Provider, "provider", "", "override backend provider")
	cmd.Flags().StringVar(&opts.URL, "url", "", "override backend base url")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "override api key")
	cmd.Flags().BoolVar(&opts.AutoContinue, "auto-continue", true, "let the backend continue truncated answers")
	return cmd
}

func runChat(cmd *cobra.Command, opts *chatOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("auto-continue") && viper.IsSet("chat.auto_continue") {
		opts.AutoContinue = cfg.Chat.AutoContinue
	}

	conversation, params := buildConversation(cfg, &askOptions{
		Model:        opts.Model,
		Provider:     opts.Provider,
		URL:          opts.URL,
		APIKey:       opts.APIKey,
		AutoContinue: opts.AutoContinue,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "g4f-chat interactive mode. Type 'exit' or 'quit' to leave.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			return nil
		}

		charmlog.Debug("sending prompt", "model", params.Model, "provider", params.Provider)

		// Stream each answer; a failed turn is reported and the loop
		// continues with the next prompt.
		if err := streamResponse(cmd.Context(), out, conversation, prompt, params); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
}
