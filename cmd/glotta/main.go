// Command glotta is a CLI for the Glotta translation API: text and
// document translation, glossary management, and account info.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glotta-io/glotta/internal/app"
	"github.com/glotta-io/glotta/internal/cli"
	"github.com/glotta-io/glotta/internal/config"
	"github.com/glotta-io/glotta/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "glotta: %v\n", err)
		os.Exit(1)
	}
}

// cliState holds what PersistentPreRunE prepares for the subcommands.
type cliState struct {
	cfg *config.Config
	log zerolog.Logger
}

// deps builds the API client. Split from setup so commands that never
// talk to the API, like auth set-key, work without an auth key.
func (s *cliState) deps() (*app.Deps, error) {
	return app.NewDeps(s.cfg, s.log, nil)
}

func newRootCommand() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:           "glotta",
		Short:         "Translate text and documents via the Glotta API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bootstrapLog, err := logging.New("local", "warn")
			if err != nil {
				return err
			}
			cli.LoadEnv(bootstrapLog)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Environment, cfg.LogLevel)
			if err != nil {
				return err
			}

			state.cfg = cfg
			state.log = log
			return nil
		},
	}

	root.AddCommand(
		newTextCmd(state),
		newDocumentCmd(state),
		newGlossaryCmd(state),
		newLanguagesCmd(state),
		newUsageCmd(state),
		newAuthCmd(),
	)
	return root
}

func newTextCmd(state *cliState) *cobra.Command {
	var opts app.TextOptions

	cmd := &cobra.Command{
		Use:   "text [text]",
		Short: "Translate text (reads stdin when no argument is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Text = args[0]
			}
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunText(cmd.Context(), deps, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SourceLang, "from", "f", "", "source language code (detected when empty)")
	cmd.Flags().StringVarP(&opts.TargetLang, "to", "t", "", "target language code")
	cmd.Flags().StringVar(&opts.GlossaryID, "glossary", "", "glossary ID to apply")
	cmd.Flags().StringVar(&opts.Formality, "formality", "", "formality: more or less")
	cmd.Flags().BoolVar(&opts.Detect, "detect", false, "detect the source language locally before sending")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newDocumentCmd(state *cliState) *cobra.Command {
	var opts app.DocumentOptions

	cmd := &cobra.Command{
		Use:   "document <file>...",
		Short: "Translate documents, writing <name>.<lang><ext> next to each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Inputs = args
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunDocuments(cmd.Context(), deps, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SourceLang, "from", "f", "", "source language code (detected when empty)")
	cmd.Flags().StringVarP(&opts.TargetLang, "to", "t", "", "target language code")
	cmd.Flags().StringVar(&opts.GlossaryID, "glossary", "", "glossary ID to apply")
	cmd.Flags().StringVar(&opts.Formality, "formality", "", "formality: more or less")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "directory for translated files")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "max documents translated at once (default 4)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newGlossaryCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Manage glossaries",
	}

	var createOpts app.GlossaryCreateOptions
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a glossary from source=target entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			createOpts.Name = args[0]
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunGlossaryCreate(cmd.Context(), deps, createOpts)
		},
	}
	create.Flags().StringVarP(&createOpts.SourceLang, "from", "f", "", "source language code")
	create.Flags().StringVarP(&createOpts.TargetLang, "to", "t", "", "target language code")
	create.Flags().StringArrayVarP(&createOpts.Entries, "entry", "e", nil, "glossary entry as source=target (repeatable)")
	create.Flags().StringVar(&createOpts.EntriesFile, "entries-file", "", "file with one source=target entry per line")
	create.Flags().BoolVar(&createOpts.Wait, "wait", false, "wait until the glossary is ready")
	_ = create.MarkFlagRequired("from")
	_ = create.MarkFlagRequired("to")

	list := &cobra.Command{
		Use:   "list",
		Short: "List glossaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunGlossaryList(cmd.Context(), deps)
		},
	}

	wait := &cobra.Command{
		Use:   "wait <glossary-id>",
		Short: "Wait until a glossary is ready",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunGlossaryWait(cmd.Context(), deps, args[0])
		},
	}

	del := &cobra.Command{
		Use:   "delete <glossary-id>",
		Short: "Delete a glossary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunGlossaryDelete(cmd.Context(), deps, args[0])
		},
	}

	cmd.AddCommand(create, list, wait, del)
	return cmd
}

func newLanguagesCmd(state *cliState) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunLanguages(cmd.Context(), deps, kind)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "source", "language list to show: source or target")
	return cmd
}

func newUsageCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show account usage and limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := state.deps()
			if err != nil {
				return err
			}
			return app.RunUsage(cmd.Context(), deps)
		},
	}
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored credentials",
	}

	setKey := &cobra.Command{
		Use:   "set-key <auth-key>",
		Short: "Store the auth key in the user config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunSetKey(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.AddCommand(setKey)
	return cmd
}
