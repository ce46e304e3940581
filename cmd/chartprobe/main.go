// Command chartprobe loads a chart from a YAML fixture and reports how it
// maps values and touches to pixels.
//
// Usage:
//
//	chartprobe highlight -f chart.yaml --at 210,140
//	chartprobe transform -f chart.yaml --value 5,50
//	chartprobe viewport -f chart.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
