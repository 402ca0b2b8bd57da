package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var config = viper.New()

var rootCmd = &cobra.Command{
	Use:   "oaschema",
	Short: "Inspect and normalize OpenAPI schema documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(config.GetString("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warning", "log level, one of debug, info, warning, error")
	config.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	// OASCHEMA_LOG_LEVEL, OASCHEMA_MAX_DEPTH ...
	config.SetEnvPrefix("oaschema")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	rootCmd.AddCommand(normalizeCmd, refCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
