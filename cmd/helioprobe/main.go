package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dbrossard/helio"
	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

// This code reports where a probe is relative to the astrosphere boundaries,
// along with the ambient wind it is flying through.

const dateFormat = "2006-01-02 15:04:05"

var (
	probe   string
	date    string
	jde     float64
	verbose bool
)

func init() {
	flag.StringVar(&probe, "probe", "", "probe name ("+strings.Join(helio.ProbeNames(), ", ")+")")
	flag.StringVar(&date, "date", "", "epoch as `"+dateFormat+"` (defaults to now)")
	flag.Float64Var(&jde, "jde", 0, "epoch as a Julian date (overrides -date)")
	flag.BoolVar(&verbose, "verbose", false, "log the loaded data store state")
}

func main() {
	flag.Parse()
	if probe == "" {
		log.Fatal("no probe provided (-probe)")
	}
	epoch := epochFlag()

	store := helio.NewDataStore(storeLogger())
	state, err := store.ProbeState(probe, epoch)
	if err != nil {
		log.Fatalf("%s", err)
	}

	dir := state.PositionAU
	θ := math.Acos(dir[2] / state.RadialAU)
	φ := math.Atan2(dir[1], dir[0])
	bounds := store.BoundaryAt(θ, φ, epoch)
	cond := store.ConditionsAt(epoch, state.RadialAU)
	sunspot, _, cycleName := store.SolarActivity(epoch)

	fmt.Printf("%s at JDE %.1f (%s zone)\n", state.Name, epoch, state.Zone)
	fmt.Printf("  position    %8.2f AU  [%.2f %.2f %.2f]\n", state.RadialAU, dir[0], dir[1], dir[2])
	v := state.VelocityKmS
	fmt.Printf("  velocity    %8.2f km/s\n", math.Sqrt(v[0]*v[0]+v[1]*v[1]+v[2]*v[2]))
	fmt.Printf("  shock       %8.2f AU  (%s)\n", bounds.ShockAU, insideOutside(state.RadialAU, bounds.ShockAU))
	fmt.Printf("  boundary    %8.2f AU  (%s)\n", bounds.BoundaryAU, insideOutside(state.RadialAU, bounds.BoundaryAU))
	if bounds.HasBowShock {
		fmt.Printf("  bow shock   %8.2f AU\n", bounds.BowShockAU)
	} else {
		fmt.Printf("  bow shock   absent (subsonic inflow)\n")
	}
	fmt.Printf("  wind        %.0f km/s, %.4f cm^-3, %.0f K, %.3f nT\n",
		cond.SpeedKmS, cond.DensityPerCm3, cond.TemperatureK, cond.FieldNT)
	fmt.Printf("  activity    sunspot %.0f (%s)\n", sunspot, cycleName)
}

func insideOutside(r, limit float64) string {
	if r < limit {
		return "inside"
	}
	return "crossed"
}

func storeLogger() kitlog.Logger {
	if !verbose {
		return nil
	}
	return kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
}

func epochFlag() float64 {
	if jde != 0 {
		return jde
	}
	if date == "" {
		return julian.TimeToJD(time.Now().UTC())
	}
	dt, err := time.Parse(dateFormat, date)
	if err != nil {
		log.Fatalf("could not parse date `%s`: %s", date, err)
	}
	return julian.TimeToJD(dt)
}
