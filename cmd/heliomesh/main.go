package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dbrossard/helio"
	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

// This code tessellates one of the astrosphere surfaces and writes it out as
// a Wavefront OBJ file.

const dateFormat = "2006-01-02 15:04:05"

var (
	surface    string
	resolution int
	date       string
	jde        float64
	output     string
	verbose    bool
)

func init() {
	flag.StringVar(&surface, "surface", "boundary", "surface to export (shock, boundary, bowshock)")
	flag.IntVar(&resolution, "resolution", 48, "grid resolution N (yields (N+1)^2 vertices)")
	flag.StringVar(&date, "date", "", "epoch as `"+dateFormat+"` (defaults to now)")
	flag.Float64Var(&jde, "jde", 0, "epoch as a Julian date (overrides -date)")
	flag.StringVar(&output, "o", "", "output OBJ file (defaults to <surface>.obj)")
	flag.BoolVar(&verbose, "verbose", false, "log the loaded data store state")
}

func main() {
	flag.Parse()
	kind, err := helio.SurfaceKindFromString(surface)
	if err != nil {
		log.Fatalf("%s", err)
	}
	epoch := epochFlag()

	store := helio.NewDataStore(storeLogger())
	mesh := store.Mesh(kind, resolution, epoch)
	if mesh.VertexCount() == 0 {
		log.Fatalf("no %s surface exists at JDE %.1f", kind, epoch)
	}

	if output == "" {
		output = kind.String() + ".obj"
	}
	var sb strings.Builder
	mesh.WriteOBJ(&sb, kind.String())
	if err := os.WriteFile(output, []byte(sb.String()), 0644); err != nil {
		log.Fatalf("could not write %s: %s", output, err)
	}
	log.Printf("wrote %s: %d vertices, %d triangles (JDE %.1f)", output, mesh.VertexCount(), mesh.TriangleCount(), epoch)
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
