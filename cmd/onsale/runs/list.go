package runs

import (
	"fmt"
	"time"

	"github.com/openticket/onsale/state"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	runsCmd.AddCommand(runsListCmd)
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	Run:   runsList,
}

func runsList(_ *cobra.Command, _ []string) {
	store, err := state.Open(statePath)
	if err != nil {
		logrus.Fatalf("error opening state store (%v)", err)
	}
	defer func() { _ = store.Close() }()

	count := 0
	err = store.EachRun(func(r *state.RunRecord) error {
		fmt.Printf("%s  %s  %8s  available [%d/%d] released [%d] purchased [%d]\n",
			r.Started.Format(time.RFC3339), r.Id,
			r.Ended.Sub(r.Started).Round(time.Second),
			r.Final.Available, r.Final.Capacity,
			r.Final.TotalReleased, r.Final.TotalPurchased)
		count++
		return nil
	})
	if err != nil {
		logrus.Fatalf("error reading runs (%v)", err)
	}
	logrus.Infof("[%d] runs", count)
}
