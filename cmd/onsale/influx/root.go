package influx

import (
	onsalecmd "github.com/openticket/onsale/cmd/onsale/onsale"
	"github.com/spf13/cobra"
)

func init() {
	influxCmd.PersistentFlags().StringVar(&influxDbUrl, "url", "http://localhost:8086", "InfluxDB URL")
	influxCmd.PersistentFlags().StringVar(&influxDbToken, "token", "", "InfluxDB auth token")
	influxCmd.PersistentFlags().StringVar(&influxDbOrg, "org", "", "InfluxDB organization")
	influxCmd.PersistentFlags().StringVar(&influxDbBucket, "bucket", "onsale", "InfluxDB bucket")
	onsalecmd.RootCmd.AddCommand(influxCmd)
}

var influxCmd = &cobra.Command{
	Use:   "influx",
	Short: "Export recorded metrics into the analyzer",
}
var influxDbUrl string
var influxDbToken string
var influxDbOrg string
var influxDbBucket string
