package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Sibyl1122/promptGenerator/pkg/client"

	"github.com/spf13/cobra"
)

func newModelsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "models",
		Aliases: []string{"model", "m"},
		Short:   "Manage model configurations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List model configurations, the default first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().ListModels(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, list)
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tMODEL\tKEY\tDEFAULT")
			for _, m := range list {
				def := ""
				if m.IsDefault {
					def = "*"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.APIType, m.ModelID, m.APIKey, def)
			}
			return tw.Flush()
		},
	})

	var req client.CreateModelRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a model configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.client().CreateModel(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), m)
			}
			success(cmd.OutOrStdout(), "Added model %d (%s)", m.ID, m.Name)
			return nil
		},
	}
	add.Flags().StringVar(&req.Name, "name", "", "Display name")
	add.Flags().StringVar(&req.ModelID, "model-id", "", "Model identifier sent to the provider")
	add.Flags().StringVar(&req.APIType, "api-type", "openai", "openai, azure, claude or gemini")
	add.Flags().StringVar(&req.BaseURL, "base-url", "", "Provider endpoint")
	add.Flags().StringVar(&req.APIKey, "api-key", "", "Provider credential")
	add.Flags().StringVar(&req.APIVersion, "api-version", "", "API version, required for azure")
	add.Flags().BoolVar(&req.IsDefault, "default", false, "Make this the default model")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("model-id")
	cmd.AddCommand(add)

	var (
		name, modelID, apiType, baseURL, apiKey, apiVersion string
		isDefault                                           bool
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a model configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var upd client.UpdateModelRequest
			f := cmd.Flags()
			if f.Changed("name") {
				upd.Name = &name
			}
			if f.Changed("model-id") {
				upd.ModelID = &modelID
			}
			if f.Changed("api-type") {
				upd.APIType = &apiType
			}
			if f.Changed("base-url") {
				upd.BaseURL = &baseURL
			}
			if f.Changed("api-key") {
				upd.APIKey = &apiKey
			}
			if f.Changed("api-version") {
				upd.APIVersion = &apiVersion
			}
			if f.Changed("default") {
				upd.IsDefault = &isDefault
			}

			m, err := opts.client().UpdateModel(cmd.Context(), id, upd)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), m)
			}
			success(cmd.OutOrStdout(), "Updated model %d", m.ID)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "Display name")
	update.Flags().StringVar(&modelID, "model-id", "", "Model identifier")
	update.Flags().StringVar(&apiType, "api-type", "", "openai, azure, claude or gemini")
	update.Flags().StringVar(&baseURL, "base-url", "", "Provider endpoint")
	update.Flags().StringVar(&apiKey, "api-key", "", "Provider credential")
	update.Flags().StringVar(&apiVersion, "api-version", "", "API version")
	update.Flags().BoolVar(&isDefault, "default", false, "Make this the default model")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a model configuration",
		Long:  "Delete a model configuration. The default model cannot be deleted; make another one the default first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().DeleteModel(cmd.Context(), id); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Deleted model %d", id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "default <id>",
		Short: "Make a model configuration the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := opts.client().SetDefaultModel(cmd.Context(), id)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%s is now the default model", m.Name)
			return nil
		},
	})

	return cmd
}
