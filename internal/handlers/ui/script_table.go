package ui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/run/internal/core/domain/script"
	"github.com/olekukonko/tablewriter"
)

// RenderScriptTable prints every entry in name order with its alias and comment.
func RenderScriptTable(w io.Writer, entries []script.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, InfoColor("No scripts found. Use 'run --init' to create some."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Name", "Comment"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		alias := "-"
		if e.HasAlias() {
			alias = AliasColor(string(e.Alias))
		}
		table.Append([]string{alias, ScriptNameColor(e.Name), e.Script.Comment})
	}
	table.Render()
}
