package main

import (
	"encoding/json"
	"io"
	"runtime/debug"

	"github.com/esportlab/elab/pkg/version"
	"github.com/spf13/cobra"
)

var (
	configPath string

	ojson bool

	rootCmd = &cobra.Command{
		Use:          "elab",
		Short:        "Team scheduling for esports teams, in the terminal",
		Long:         "elab is a terminal client for EsportLab: log in with Discord, manage your team and invites, and plan the week's availability on a shared calendar.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		statusCmd,
		teamCmd,
		inviteCmd,
		availabilityCmd,
		uiCmd,
		manCmd,
	)

	for _, cmd := range []*cobra.Command{
		statusCmd,
		teamCmd,
		inviteCmd,
		availabilityCmd,
	} {
		cmd.PersistentFlags().BoolVar(&ojson, "json", false, "output as JSON")
	}

	// Running `elab` with no subcommand opens the calendar.
	rootCmd.RunE = uiCmd.RunE
	rootCmd.Args = cobra.NoArgs

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(version.CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + version.CommitSHA[0:7] + ")\n")
	}
	if version.Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			version.Version = info.Main.Version
		}
	}
	rootCmd.Version = version.Version
}

func writeJSON(w io.Writer, t any) error {
	bts, err := json.Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(bts)
	return err
}
