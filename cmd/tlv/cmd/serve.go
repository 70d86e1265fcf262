package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wirebyte/tlvkit/pkg/api"
	"github.com/wirebyte/tlvkit/pkg/config"
	"github.com/wirebyte/tlvkit/pkg/schema"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TLV decode service",
	Long: `Start the HTTP decode service: decode and build endpoints, a
capture archive backed by a local store, and Prometheus metrics on
/metrics.

Examples:
  tlv serve --port 8080
  tlv serve --config tlvkit.yaml
  tlv serve --api-key sekrit --schema dhcp.yaml --variant inclusive`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveServeConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			fmt.Printf("Error creating data dir: %v\n", err)
			return
		}

		// the --schema flag wins over the config file's schema path
		sch := schema.Builtin()
		if cmd.Flags().Changed("schema") {
			sch, err = schemaFromFlags(cmd)
		} else if cfg.Schema != "" {
			sch, err = schema.Load(cfg.Schema)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		err = api.StartServer(api.ServerConfig{
			Bind:    cfg.Bind,
			Port:    cfg.Port,
			DataDir: cfg.DataDir,
			APIKey:  cfg.APIKey,
			Variant: cfg.Variant,
			Schema:  sch,
		})
		if err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

// resolveServeConfig layers flag overrides on top of the config file (or
// the defaults when no file is given).
func resolveServeConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		cfg.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey, _ = cmd.Flags().GetString("api-key")
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant, _ = cmd.Flags().GetString("variant")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("data-dir", "./data", "Directory for the capture archive")
	serveCmd.Flags().String("api-key", "", "Require this key in the X-API-Key header")
	rootCmd.AddCommand(serveCmd)
}
