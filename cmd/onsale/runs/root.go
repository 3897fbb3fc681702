package runs

import (
	onsalecmd "github.com/openticket/onsale/cmd/onsale/onsale"
	"github.com/spf13/cobra"
)

func init() {
	runsCmd.PersistentFlags().StringVarP(&statePath, "state", "s", "state", "Run history store path")
	onsalecmd.RootCmd.AddCommand(runsCmd)
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded simulation runs",
}
var statePath string
