package influx

import (
	"path/filepath"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/openticket/onsale/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	influxCmd.AddCommand(influxLoadCmd)
}

var influxLoadCmd = &cobra.Command{
	Use:   "load <metricsRoot>",
	Short: "Load recorded metrics into InfluxDB",
	Args:  cobra.ExactArgs(1),
	Run:   influxLoad,
}

var datasets = []string{
	"available",
	"released",
	"purchased",
	"release_saturated",
	"purchase_saturated",
}

func influxLoad(_ *cobra.Command, args []string) {
	metrics, err := util.DiscoverMetrics(args[0])
	if err != nil {
		logrus.Fatalf("error discovering metrics (%v)", err)
	}

	client := influxdb2.NewClient(influxDbUrl, influxDbToken)
	writeApi := client.WriteAPI(influxDbOrg, influxDbBucket)

	for root, metricsId := range metrics {
		for _, dataset := range datasets {
			data, err := util.ReadSamples(filepath.Join(root, dataset+".csv"))
			if err != nil {
				logrus.Fatalf("error reading dataset [%s] (%v)", dataset, err)
			}
			for ts, v := range data {
				p := influxdb2.NewPoint(dataset, nil, map[string]interface{}{"v": v}, time.Unix(0, ts)).AddTag("pool", metricsId.Id)
				writeApi.WritePoint(p)
			}
			logrus.Infof("wrote [%d] points for pool [%s] dataset [%s]", len(data), metricsId.Id, dataset)
		}
	}

	client.Close()
	logrus.Infof("complete")
}
