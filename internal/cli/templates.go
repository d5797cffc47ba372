package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "t"},
		Short:   "Browse prompt templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := opts.client().ListTemplates(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, templates)
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tVARIABLES")
			for _, t := range templates {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Name, strings.Join(t.Variables, ", "))
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := opts.client().GetTemplate(cmd.Context(), id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, t)
			}
			cyan.Fprintf(w, "%s ", t.Name)
			dim.Fprintf(w, "#%d\n\n", t.ID)
			fmt.Fprintln(w, t.Content)
			return nil
		},
	})

	var vars []string
	render := &cobra.Command{
		Use:   "render <id>",
		Short: "Fill a template's placeholders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			values := make(map[string]string, len(vars))
			for _, kv := range vars {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid --var %q, want name=value", kv)
				}
				values[k] = v
			}

			out, err := opts.client().RenderTemplate(cmd.Context(), id, values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	render.Flags().StringArrayVar(&vars, "var", nil, "Placeholder value as name=value, repeatable")
	cmd.AddCommand(render)

	return cmd
}
