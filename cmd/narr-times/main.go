// Package main lists the timestamps and pressure levels available in a NARR
// NetCDF file, in the exact form the renderer accepts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/narrmaps/narr-maps/internal/adapter/narr"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s FILE.nc\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	ds, err := narr.Open(path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", path, err)
	}
	defer ds.Close()

	timeAxis, err := ds.TimeAxis()
	if err != nil {
		log.Fatalf("Failed to read time axis: %v", err)
	}
	fmt.Printf("%s: %d time steps\n", path, timeAxis.Len())
	for _, stamp := range timeAxis.Stamps {
		fmt.Println(stamp)
	}

	// Pressure files also carry a level axis; monolevel files do not.
	levelAxis, err := ds.LevelAxis()
	if err != nil {
		return
	}
	fmt.Printf("levels (hPa):")
	for _, l := range levelAxis.Levels {
		fmt.Printf(" %g", l)
	}
	fmt.Println()
}
