package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/rchdlps/gerenciador-projetos-sub002/cmd/http"
	systemcmd "github.com/rchdlps/gerenciador-projetos-sub002/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "gerenciador",
	Short: "Notification delivery service for the municipal project management platform.",
	Long: `Gerenciador is the notification subsystem of a multi-tenant municipal
project management platform. It stores per-user notifications, streams them to
live clients, fans out admin broadcasts and runs the scheduled delivery jobs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
