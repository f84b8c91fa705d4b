package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfoFlag names the root flag that prints Full instead of the blend2d version.
// A flag keeps every positional argument, "version" included, on the main command.
const BuildInfoFlag = "build-info"

// AttachCobraBuildInfoFlag registers BuildInfoFlag on root.
func AttachCobraBuildInfoFlag(root *cobra.Command) {
	root.Flags().Bool(BuildInfoFlag, false, "print blversion build information and exit")
}

// PrintIfRequested writes Full to the command output when BuildInfoFlag is set
// and reports whether it did.
func PrintIfRequested(cmd *cobra.Command) bool {
	requested, err := cmd.Flags().GetBool(BuildInfoFlag)
	if err != nil || !requested {
		return false
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full())

	return true
}
