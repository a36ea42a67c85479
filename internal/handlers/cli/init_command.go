package cli

import (
	"fmt"

	"github.com/AntonioJCosta/run/internal/core/ports"
	"github.com/AntonioJCosta/run/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// runInitCmd writes run.yaml from the first available source.
func runInitCmd(cmd *cobra.Command, registryService ports.ScriptRegistryService, force bool) error {
	result, err := registryService.Init(force)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		ui.SuccessColor("Created"),
		ui.ScriptNameColor(result.File),
		ui.DetailColor(fmt.Sprintf("(%d script(s) from %s)", result.Entries, result.Source)))
	return nil
}
