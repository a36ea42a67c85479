package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	WarningColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	ErrorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like locations
)

// Script Specific Colors
var (
	ScriptNameColor = color.New(color.FgYellow).SprintFunc()
	AliasColor      = color.New(color.FgGreen, color.Bold).SprintFunc()
	CommandColor    = color.New(color.FgWhite).SprintFunc()
)

// DisableColor turns colour output off for the whole process when off is true.
func DisableColor(off bool) {
	if off {
		color.NoColor = true
	}
}
