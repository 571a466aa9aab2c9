package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/RustamYuburov/inventory-application/internal/cli/common"
	"github.com/RustamYuburov/inventory-application/internal/cli/seedcmd"
	"github.com/RustamYuburov/inventory-application/internal/cli/servecmd"
)

func main() {
	root := &cobra.Command{Use: "inventory", Short: "Game catalog web application"}

	root.AddCommand(servecmd.New())
	root.AddCommand(seedcmd.New())

	// completion
	comp := &cobra.Command{Use: "completion [bash|zsh|fish|powershell]", Short: "Generate shell completion"}
	comp.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatalf("specify a shell: bash|zsh|fish|powershell")
		}
		switch args[0] {
		case "bash":
			root.GenBashCompletion(os.Stdout)
		case "zsh":
			root.GenZshCompletion(os.Stdout)
		case "fish":
			root.GenFishCompletion(os.Stdout, true)
		case "powershell":
			root.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			log.Fatalf("unknown shell: %s", args[0])
		}
	}
	root.AddCommand(comp)

	// config check
	cfgTest := &cobra.Command{Use: "config-test", Short: "Validate and print effective config"}
	var cfgFile string
	cfgTest.Flags().StringVar(&cfgFile, "config", "", "config file path")
	cfgTest.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := common.Load(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("config OK: addr=%s db=%s uploads=%s templates=%s\n",
			cfg.Addr, cfg.Mongo.Database, cfg.Uploads.Dir, cfg.Templates.Dir)
		return nil
	}
	root.AddCommand(cfgTest)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
