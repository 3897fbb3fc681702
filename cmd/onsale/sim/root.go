package sim

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openticket/onsale"
	onsalecmd "github.com/openticket/onsale/cmd/onsale/onsale"
	"github.com/openticket/onsale/state"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	simCmd.Flags().StringVarP(&configPath, "config", "c", "config.json", "Configuration file path")
	simCmd.Flags().IntVarP(&vendors, "vendors", "n", 2, "Number of vendor actors")
	simCmd.Flags().IntVarP(&customers, "customers", "m", 2, "Number of customer actors")
	simCmd.Flags().DurationVarP(&duration, "duration", "t", 0, "Maximum run time (0 = until saturation or interrupt)")
	simCmd.Flags().StringVarP(&instrumentName, "instrument", "i", "logger", "Instrument (nil, logger, metrics)")
	simCmd.Flags().StringVarP(&instrumentConfigPath, "instrument-config", "f", "", "Instrument config (YAML) path")
	simCmd.Flags().StringVarP(&statePath, "state", "s", "", "Run history store path")
	onsalecmd.RootCmd.AddCommand(simCmd)
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a marketplace simulation",
	Args:  cobra.NoArgs,
	Run:   sim,
}
var configPath string
var vendors int
var customers int
var duration time.Duration
var instrumentName string
var instrumentConfigPath string
var statePath string

func sim(_ *cobra.Command, _ []string) {
	cfg, err := state.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			logrus.Fatalf("error loading configuration (%v)", err)
		}
		cfg = onsale.DefaultConfig()
		logrus.Infof("no configuration at [%s], using defaults", configPath)
	}

	i, err := makeInstrument()
	if err != nil {
		logrus.Fatalf("error creating instrument (%v)", err)
	}

	session, err := onsale.NewSession(cfg, i)
	if err != nil {
		logrus.Fatalf("error creating session (%v)", err)
	}
	started := time.Now()
	logrus.Infof("session [%s] starting with [%d/%d] tickets", session.Id(), cfg.TotalTickets, cfg.MaxTicketCapacity)

	if err := session.StartVendors(vendors); err != nil {
		logrus.Fatalf("error starting vendors (%v)", err)
	}
	if err := session.StartCustomers(customers); err != nil {
		logrus.Fatalf("error starting customers (%v)", err)
	}

	settled := make(chan struct{})
	go func() {
		session.Await()
		close(settled)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	var timeout <-chan time.Time
	if duration > 0 {
		timeout = time.After(duration)
	}
	select {
	case <-settled:
		logrus.Infof("all actors stopped")
	case <-sigs:
		logrus.Infof("interrupted")
	case <-timeout:
		logrus.Infof("duration elapsed")
	}
	session.Stop()

	snapshot := session.Snapshot()
	logrus.Infof("available [%d/%d], released [%d], purchased [%d], elapsed [%v]",
		snapshot.Available, snapshot.Capacity, snapshot.TotalReleased, snapshot.TotalPurchased,
		session.Elapsed().Round(time.Millisecond))

	if mi, ok := i.(*onsale.MetricsInstrument); ok {
		if err := mi.WriteAllSamples(); err != nil {
			logrus.Errorf("error writing metrics (%v)", err)
		}
	}

	cfg.TotalTickets = snapshot.Available
	if err := state.SaveConfig(configPath, cfg); err != nil {
		logrus.Errorf("error saving configuration (%v)", err)
	}

	if statePath != "" {
		recordRun(session, cfg, snapshot, started)
	}
}

func recordRun(session *onsale.Session, cfg *onsale.Config, snapshot onsale.Snapshot, started time.Time) {
	store, err := state.Open(statePath)
	if err != nil {
		logrus.Errorf("error opening state store (%v)", err)
		return
	}
	defer func() { _ = store.Close() }()

	record := &state.RunRecord{
		Id:      session.Id(),
		Started: started,
		Ended:   time.Now(),
		Config:  *cfg,
		Final:   snapshot,
	}
	if err := store.PutRun(record); err != nil {
		logrus.Errorf("error recording run (%v)", err)
	}
}

func makeInstrument() (onsale.Instrument, error) {
	var icfg map[string]interface{}
	if instrumentConfigPath != "" {
		data, err := os.ReadFile(instrumentConfigPath)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading instrument config [%s]", instrumentConfigPath)
		}
		if err := yaml.Unmarshal(data, &icfg); err != nil {
			return nil, errors.Wrapf(err, "error parsing instrument config [%s]", instrumentConfigPath)
		}
	}
	return onsale.NewInstrument(instrumentName, icfg)
}
