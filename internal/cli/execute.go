package cli

import (
	"fmt"

	"github.com/Sibyl1122/promptGenerator/internal/ui"
	"github.com/Sibyl1122/promptGenerator/pkg/client"

	"github.com/spf13/cobra"
)

func newExecuteCmd(opts *options) *cobra.Command {
	var (
		text          string
		promptID      uint
		modelName     string
		modelConfigID uint
		temperature   float64
		maxTokens     int
	)

	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Run a prompt against a model",
		Long: `Run a prompt against a model. With --prompt-id and no --prompt the
latest version of that prompt is run and the exchange is recorded as a shot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			req := client.ExecuteRequest{
				Prompt:    text,
				Model:     modelName,
				MaxTokens: maxTokens,
			}
			if promptID != 0 {
				req.PromptID = &promptID
				if req.Prompt == "" {
					p, err := c.GetPrompt(cmd.Context(), promptID)
					if err != nil {
						return err
					}
					req.Prompt = p.Content
				}
			}
			if req.Prompt == "" {
				return fmt.Errorf("either --prompt or --prompt-id is required")
			}
			if modelConfigID != 0 {
				req.ModelConfigID = &modelConfigID
			}
			if cmd.Flags().Changed("temperature") {
				req.Temperature = &temperature
			}

			sp := ui.NewSpinnerTo(cmd.ErrOrStderr(), "Running prompt...")
			sp.Start()
			res, err := c.Execute(cmd.Context(), req)
			if err != nil {
				sp.Fail("Execution failed")
				return err
			}
			sp.Stop()

			w := cmd.OutOrStdout()
			if opts.json {
				return printJSON(w, res)
			}
			fmt.Fprintln(w, res.Result)
			dim.Fprintf(cmd.ErrOrStderr(), "\n%s t=%.2f max=%d\n", res.Model, res.Temperature, res.MaxTokens)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&text, "prompt", "", "Prompt text to run")
	f.UintVar(&promptID, "prompt-id", 0, "Saved prompt to run and record the shot against")
	f.StringVar(&modelName, "model", "", "Model id or config name")
	f.UintVar(&modelConfigID, "model-config", 0, "Model configuration id")
	f.Float64Var(&temperature, "temperature", 0.7, "Sampling temperature")
	f.IntVar(&maxTokens, "max-tokens", 0, "Token budget, 0 for the backend default")
	return cmd
}
