package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Sibyl1122/promptGenerator/internal/ui"

	"github.com/spf13/cobra"
)

func newPromptsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompts",
		Aliases: []string{"prompt", "p"},
		Short:   "Manage saved prompts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := ui.NewSpinnerTo(cmd.ErrOrStderr(), "Loading prompts...")
			sp.Start()
			prompts, err := opts.client().ListPrompts(cmd.Context())
			sp.Stop()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, prompts)
			}
			if len(prompts) == 0 {
				fmt.Fprintln(w, "No prompts yet.")
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tVERSION\tSOURCE\tUPDATED")
			for _, p := range prompts {
				fmt.Fprintf(tw, "%d\t%s\tv%d\t%s\t%s\n", p.ID, p.Name, p.LatestVersion, p.Source, p.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a prompt with its latest content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := opts.client().GetPrompt(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, p)
			}
			cyan.Fprintf(w, "%s ", p.Name)
			dim.Fprintf(w, "#%d v%d (%s)\n\n", p.ID, p.LatestVersion, p.Source)
			fmt.Fprintln(w, p.Content)
			return nil
		},
	})

	var name, content, file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readContent(content, file)
			if err != nil {
				return err
			}
			p, err := opts.client().CreatePrompt(cmd.Context(), name, body)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), p)
			}
			success(cmd.OutOrStdout(), "Created prompt %d (%s)", p.ID, p.Name)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "Prompt name")
	create.Flags().StringVar(&content, "content", "", "Prompt text")
	create.Flags().StringVarP(&file, "file", "f", "", "Read the prompt text from a file, - for stdin")
	_ = create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	var newName, newContent, newFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Save new content as the next version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			body, err := readContent(newContent, newFile)
			if err != nil {
				return err
			}
			p, err := opts.client().UpdatePrompt(cmd.Context(), id, body, newName)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), p)
			}
			success(cmd.OutOrStdout(), "Prompt %d is now at v%d", p.ID, p.LatestVersion)
			return nil
		},
	}
	update.Flags().StringVar(&newName, "name", "", "Rename the prompt")
	update.Flags().StringVar(&newContent, "content", "", "New prompt text")
	update.Flags().StringVarP(&newFile, "file", "f", "", "Read the new text from a file, - for stdin")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().DeletePrompt(cmd.Context(), id); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Deleted prompt %d", id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "versions <id>",
		Short: "List the versions of a prompt, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			versions, err := opts.client().ListPromptVersions(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, versions)
			}
			for _, v := range versions {
				cyan.Fprintf(w, "v%d ", v.Version)
				dim.Fprintf(w, "%s by %s\n", v.CreatedAt.Format("2006-01-02 15:04"), v.Creator)
				fmt.Fprintf(w, "%s\n\n", v.Content)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "shots <id>",
		Short: "List recorded executions of a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			shots, err := opts.client().ListPromptShots(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, shots)
			}
			if len(shots) == 0 {
				fmt.Fprintln(w, "No shots recorded.")
				return nil
			}
			for _, s := range shots {
				dim.Fprintf(w, "[%s] %s t=%.2f max=%d\n", s.CreatedAt.Format("2006-01-02 15:04:05"), s.Model, s.Temperature, s.MaxTokens)
				fmt.Fprintf(w, "%s\n\n", s.Content)
			}
			return nil
		},
	})

	return cmd
}

// readContent returns text, or the contents of file when it is set.
func readContent(text, file string) (string, error) {
	switch file {
	case "":
		if text == "" {
			return "", fmt.Errorf("either --content or --file is required")
		}
		return text, nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(b), nil
	}
}
