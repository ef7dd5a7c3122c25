// Package cli implementa petctl, la herramienta de línea de comandos para
// administrar el catálogo y las solicitudes contra un API en ejecución.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pet-adoption/internal/client"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type options struct {
	apiURL   string
	username string
	password string
	format   string
	timeout  time.Duration
}

// NewRootCmd arma el árbol de comandos. Los flags persistentes toman sus
// defaults del entorno.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "petctl",
		Short: "petctl - manage pets and adoption requests",
		Long: `petctl talks to a running pet adoption API.

Examples:
  # Browse available dogs
  petctl pets list --type dog --adopted=false

  # Add a pet with a photo (admin)
  petctl pets add --name Milo --type dog --image ./milo.png

  # Review and approve adoption requests (admin)
  petctl requests list --status pending
  petctl requests approve 3
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("unknown format %q (text, json)", opts.format)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "url", getEnvOrDefault("PETS_API_URL", "http://localhost:5000"), "Pet adoption API URL")
	root.PersistentFlags().StringVar(&opts.username, "username", getEnvOrDefault("PETS_ADMIN_USERNAME", "admin"), "Admin username")
	root.PersistentFlags().StringVar(&opts.password, "password", os.Getenv("PETS_ADMIN_PASSWORD"), "Admin password (required for admin commands)")
	root.PersistentFlags().StringVar(&opts.format, "format", formatText, "Output format (text, json)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "HTTP timeout")

	root.AddCommand(newPetsCmd(opts))
	root.AddCommand(newRequestsCmd(opts))
	return root
}

// Execute corre petctl con os.Args y devuelve el código de salida.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func (o *options) client() (*client.Client, error) {
	return client.New(o.apiURL, o.timeout)
}

// asAdmin corre fn con sesión admin; cada invocación de petctl es un proceso
// nuevo sin cookie previa.
func (o *options) asAdmin(ctx context.Context, fn func(ctx context.Context, c *client.Client) error) error {
	if o.password == "" {
		return fmt.Errorf("admin password required (--password or PETS_ADMIN_PASSWORD)")
	}
	c, err := o.client()
	if err != nil {
		return err
	}
	return c.AsAdmin(ctx, o.username, o.password, fn)
}

func (o *options) printer(out io.Writer) printer {
	return printer{out: out, json: o.format == formatJSON}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
