package cli

import (
	"fmt"

	"github.com/AntonioJCosta/run/internal/core/ports"
	"github.com/AntonioJCosta/run/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// runListCmd prints every script with its alias and comment.
func runListCmd(cmd *cobra.Command, registryService ports.ScriptRegistryService) error {
	reg, err := registryService.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reg.Len() > 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%d script(s) available:", reg.Len())))
	}
	ui.RenderScriptTable(out, reg.Entries())
	return nil
}
