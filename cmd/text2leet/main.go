package main

import (
	"os"
	"runtime/debug"

	"github.com/gigurra/leetkit/cmd/gen"
)

func main() {
	cmd := gen.Cmd()
	cmd.Use = "text2leet <input> <output>"
	cmd.Version = appVersion()
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
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
