package main

import (
	"crmdigest/internal/di"
	"crmdigest/internal/structures"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/pflag"
)

func main() {
	flags := &structures.CliFlags{}
	pflag.StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the YAML config file")
	pflag.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to stdout")
	pflag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "crmdigest: %s\n", err)
		os.Exit(1)
	}
}
