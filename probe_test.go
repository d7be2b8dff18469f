package helio

import (
	"testing"

	"github.com/gonum/floats"
)

func TestProbeCatalog(t *testing.T) {
	for _, name := range ProbeNames() {
		p, err := ProbeByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Name != name {
			t.Fatalf("catalog name mismatch: %s != %s", p.Name, name)
		}
	}
	// Lookup is case and separator insensitive.
	if _, err := ProbeByName("voyager-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := ProbeByName("VOYAGER 2"); err != nil {
		t.Fatal(err)
	}
	if _, err := ProbeByName("Pioneer 10"); err == nil {
		t.Fatal("unknown probe must error")
	}
}

func TestProbeWaypointAccuracy(t *testing.T) {
	v1, _ := ProbeByName("Voyager 1")
	// Termination shock crossing, 2004-12-16.
	if r := v1.RadialAU(2453355.5); !floats.EqualWithinAbs(r, 94.0, 1) {
		t.Fatalf("V1 shock crossing distance fail: %.2f AU", r)
	}
	// Heliopause crossing, 2012-08-25.
	if r := v1.RadialAU(2456164.5); !floats.EqualWithinAbs(r, 121.6, 1) {
		t.Fatalf("V1 boundary crossing distance fail: %.2f AU", r)
	}
	v2, _ := ProbeByName("Voyager 2")
	if r := v2.RadialAU(2454342.5); !floats.EqualWithinAbs(r, 83.7, 1) {
		t.Fatalf("V2 shock crossing distance fail: %.2f AU", r)
	}
	if r := v2.RadialAU(2458427.5); !floats.EqualWithinAbs(r, 119.0, 1) {
		t.Fatalf("V2 boundary crossing distance fail: %.2f AU", r)
	}
}

func TestProbeExtrapolation(t *testing.T) {
	v1, _ := ProbeByName("Voyager 1")
	_, end := v1.Range()
	rEnd := v1.RadialAU(end)
	// One Julian year past the last waypoint: exactly one radial rate further.
	if r := v1.RadialAU(end + JulianYear); !floats.EqualWithinAbs(r, rEnd+v1.RadialRate, 1e-9) {
		t.Fatalf("extrapolated distance fail: %.3f vs %.3f", r, rEnd+v1.RadialRate)
	}
	// Monotonically increasing beyond the table.
	prev := rEnd
	for i := 1; i <= 10; i++ {
		r := v1.RadialAU(end + float64(i)*100)
		if r <= prev {
			t.Fatalf("extrapolated distance not increasing at step %d", i)
		}
		prev = r
	}
	// Direction is held fixed during the coast.
	a := unit(v1.PositionAt(end + 500))
	b := unit(v1.PositionAt(end + 5000))
	if !vectorsEqual(a, b) {
		t.Fatal("coast direction must stay fixed")
	}
}

func TestProbeClampBeforeLaunch(t *testing.T) {
	nh, _ := ProbeByName("New Horizons")
	start, _ := nh.Range()
	if !vectorsEqual(nh.PositionAt(start-1000), nh.PositionAt(start)) {
		t.Fatal("pre-launch query must clamp to the first waypoint")
	}
}

func TestProbeVelocity(t *testing.T) {
	v1, _ := ProbeByName("Voyager 1")
	_, end := v1.Range()
	vel := v1.VelocityAt(end + 100)
	if !floats.EqualWithinAbs(norm(vel), v1.CruiseKmS, 1e-9) {
		t.Fatalf("cruise speed fail: %.2f km/s", norm(vel))
	}
	// Velocity points along the outward radial.
	if !floats.EqualWithinAbs(dot(unit(vel), unit(v1.PositionAt(end+100))), 1, 1e-9) {
		t.Fatal("velocity must point outward")
	}
}

func TestParkerStaysBound(t *testing.T) {
	psp, _ := ProbeByName("Parker Solar Probe")
	_, end := psp.Range()
	rEnd := psp.RadialAU(end)
	// Zero radial rate: the distance holds past the last waypoint.
	if r := psp.RadialAU(end + 10000); !floats.EqualWithinAbs(r, rEnd, 1e-9) {
		t.Fatalf("bound orbit must hold its distance: %.3f vs %.3f", r, rEnd)
	}
	// The whole track stays inside 1.1 AU.
	start, _ := psp.Range()
	for jde := start; jde <= end; jde += 50 {
		if r := psp.RadialAU(jde); r > 1.1 {
			t.Fatalf("Parker distance fail at %.1f: %.3f AU", jde, r)
		}
	}
}

func TestNewProbeTrajectoryValidation(t *testing.T) {
	if _, err := NewProbeTrajectory("short", []Waypoint{{J2000, 1, 0, 0}}, 10, 1); err == nil {
		t.Fatal("single waypoint must be rejected")
	}
	unsorted := []Waypoint{{J2000 + 10, 2, 0, 0}, {J2000, 1, 0, 0}}
	if _, err := NewProbeTrajectory("unsorted", unsorted, 10, 1); err == nil {
		t.Fatal("non-increasing epochs must be rejected")
	}
}
