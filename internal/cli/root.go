// Package cli implements the promptctl commands on top of pkg/client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/utils"
	"github.com/Sibyl1122/promptGenerator/pkg/client"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultServer = "http://localhost:8080/api"

type options struct {
	server  string
	token   string
	timeout time.Duration
	debug   bool
	json    bool
}

func (o *options) client() *client.Client {
	opts := []client.Option{client.WithToken(o.token)}
	if o.debug {
		opts = append(opts, client.WithHTTPClient(utils.NewHTTPClient(o.timeout)))
	}
	opts = append(opts, client.WithTimeout(o.timeout))
	return client.New(o.server, opts...)
}

// NewRootCmd builds the promptctl command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "promptctl",
		Short: "Manage prompts, templates and models of a prompt console",
		Long: `promptctl talks to a prompt console backend.

Examples:
  promptctl prompts list
  promptctl generate --stream --language english "a code review assistant"
  promptctl models default 2`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.debug {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger.Log = l
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.server, "server", envOr("PROMPTCTL_SERVER", defaultServer), "API root of the backend")
	flags.StringVar(&opts.token, "token", os.Getenv("PROMPTCTL_TOKEN"), "Bearer token for the API")
	flags.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Timeout of non-streaming calls")
	flags.BoolVar(&opts.debug, "debug", false, "Log every HTTP call to stderr")
	flags.BoolVar(&opts.json, "json", false, "Print raw JSON")

	root.AddCommand(
		newPromptsCmd(opts),
		newTemplatesCmd(opts),
		newModelsCmd(opts),
		newExecuteCmd(opts),
		newGenerateCmd(opts),
		newLoginCmd(opts),
		newTokenCmd(),
		newHashPasswordCmd(),
	)
	return root
}

// Execute runs promptctl with the process arguments.
func Execute(version string) error {
	defer logger.Sync()
	return NewRootCmd(version).Execute()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

var (
	cyan  = color.New(color.FgCyan, color.Bold)
	dim   = color.New(color.FgHiBlack)
	green = color.New(color.FgGreen)
)

func success(w io.Writer, format string, args ...interface{}) {
	green.Fprintf(w, "✓ "+format+"\n", args...)
}
