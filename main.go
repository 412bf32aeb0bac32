package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/leetkit/cmd/estimate"
	"github.com/gigurra/leetkit/cmd/gen"
	"github.com/gigurra/leetkit/cmd/leet"
	"github.com/gigurra/leetkit/cmd/table"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupWordlist = "wordlist"
	groupInspect  = "inspect"
)

// withGroup sets the GroupID on a command and returns it
func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "leetkit",
		Short:   "Leetspeak word list tools",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupWordlist, Title: "Word Lists:"},
			{ID: groupInspect, Title: "Inspection:"},
		},
		SubCmds: []*cobra.Command{
			withGroup(gen.Cmd(), groupWordlist),
			withGroup(leet.Cmd(), groupWordlist),

			withGroup(estimate.Cmd(), groupInspect),
			withGroup(table.Cmd(), groupInspect),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
