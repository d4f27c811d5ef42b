package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand adds a 'version' subcommand, which prints the package's version.
//
// Version, Commit and Date are set at build time:
//
//	go build -ldflags "-X github.com/redjax/encsweep/internal/version.Version=v1.0.0"
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			pkgInfo := GetPackageInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "package: %s version:%s commit:%s date:%s\n",
				pkgInfo.PackageName,
				pkgInfo.PackageVersion,
				pkgInfo.PackageCommit,
				pkgInfo.PackageReleaseDate,
			)
		},
	}
}

// NewPackageInfoCommand adds a subcommand 'info' and prints info about the package.
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE:  showPackageInfo,
	}
}
