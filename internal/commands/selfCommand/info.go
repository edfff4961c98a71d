package selfcommand

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/utils/execx"
	"github.com/entrpixx/esk/internal/version"
)

// NewPackageInfoCommand creates the 'self info' command
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package and environment",
		RunE:  showPackageInfo,
	}
}

func showPackageInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	pkgInfo := version.GetPackageInfo()

	fmt.Fprintf(out, "Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\n",
		pkgInfo.PackageName, pkgInfo.RepoUser, pkgInfo.RepoName, pkgInfo.RepoUrl)

	if info, err := host.Info(); err == nil {
		fmt.Fprintf(out, "Hostname: %s\nPlatform: %s %s (%s)\nKernel: %s\n",
			info.Hostname, info.Platform, info.PlatformVersion, info.OS, info.KernelVersion)
	}

	// esk delegates all the real work to these
	fmt.Fprintln(out, "External tools:")
	for _, tool := range []string{"ssh-keygen", "ssh", "git"} {
		status := "ok"
		if !execx.IsAvailable(tool) {
			status = "MISSING"
		}
		fmt.Fprintf(out, "  %-11s %s\n", tool, status)
	}

	return nil
}
