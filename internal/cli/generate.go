package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/Sibyl1122/promptGenerator/internal/ui"
	"github.com/Sibyl1122/promptGenerator/pkg/client"

	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		templateID  uint
		temperature float64
		language    string
		save        bool
		name        string
		stream      bool
	)

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a prompt from a description",
		Long: `Generate a prompt from a description using the default model.

With --stream the text is printed as it is produced and Ctrl-C stops the
generation. Streamed prompts are saved unless --save=false; single-call
prompts are saved only with --save.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.GenerateRequest{
				Description: strings.Join(args, " "),
				Temperature: temperature,
				Language:    language,
				PromptName:  name,
			}
			if templateID != 0 {
				req.TemplateID = &templateID
			}
			if cmd.Flags().Changed("save") {
				req.SavePrompt = &save
			}
			if err := req.Validate(); err != nil {
				return err
			}

			if stream {
				return streamGeneration(cmd, opts, req)
			}
			return generateOnce(cmd, opts, req)
		},
	}

	f := cmd.Flags()
	f.UintVar(&templateID, "template", 0, "Template used as the output format")
	f.Float64Var(&temperature, "temperature", client.DefaultTemperature, "Sampling temperature in [0,1]")
	f.StringVar(&language, "language", client.LanguageChinese, "chinese or english")
	f.BoolVar(&save, "save", false, "Save the result as a prompt")
	f.StringVar(&name, "name", "", "Name of the saved prompt")
	f.BoolVar(&stream, "stream", false, "Print the prompt as it is generated")
	return cmd
}

func generateOnce(cmd *cobra.Command, opts *options, req client.GenerateRequest) error {
	sp := ui.NewSpinnerTo(cmd.ErrOrStderr(), "Generating prompt...")
	sp.Start()
	res, err := opts.client().GeneratePrompt(cmd.Context(), req)
	if err != nil {
		sp.Fail("Generation failed")
		return err
	}
	sp.Stop()

	w := cmd.OutOrStdout()
	if opts.json {
		return printJSON(w, res)
	}
	fmt.Fprintln(w, res.GeneratedPrompt)
	if res.SavedPrompt != nil {
		success(cmd.ErrOrStderr(), "Saved as prompt %d", res.SavedPrompt.ID)
	}
	return nil
}

func streamGeneration(cmd *cobra.Command, opts *options, req client.GenerateRequest) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ch, gen, err := opts.client().Stream(context.WithoutCancel(ctx), req)
	if err != nil {
		return err
	}
	go func() {
		select {
		case <-ctx.Done():
			gen.Cancel()
		case <-gen.Done():
		}
	}()

	_, savedID, err := ui.RenderStream(cmd.OutOrStdout(), ch, "")
	if gen.State() == client.StateCancelled {
		dim.Fprintln(cmd.ErrOrStderr(), "Generation cancelled.")
		return nil
	}
	if err != nil {
		var streamErr *client.StreamError
		if errors.As(err, &streamErr) && streamErr.Partial != "" {
			dim.Fprintf(cmd.ErrOrStderr(), "Stopped after %d characters.\n", len([]rune(streamErr.Partial)))
		}
		return err
	}
	if savedID != "" {
		success(cmd.ErrOrStderr(), "Saved as prompt %s", savedID)
	}
	return nil
}
