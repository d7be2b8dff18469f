package helio

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestEpochConversion(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if jde := EpochFromTime(j2000); !floats.EqualWithinAbs(jde, J2000, 1e-9) {
		t.Fatalf("J2000 epoch fail: %f", jde)
	}
	dt := time.Date(2012, 8, 25, 0, 0, 0, 0, time.UTC)
	jde := EpochFromTime(dt)
	if !floats.EqualWithinAbs(jde, 2456164.5, 1e-9) {
		t.Fatalf("2012-08-25 epoch fail: %f", jde)
	}
	if back := TimeFromEpoch(jde); back.Sub(dt) > time.Millisecond || dt.Sub(back) > time.Millisecond {
		t.Fatalf("round trip fail: %s != %s", back, dt)
	}
}

func TestCenturies(t *testing.T) {
	if !floats.EqualWithinAbs(centuriesFromJ2000(J2000+JulianCentury), 1, 1e-12) {
		t.Fatal("centuries fail")
	}
	if !floats.EqualWithinAbs(yearsFromJ2000(J2000-JulianYear), -1, 1e-12) {
		t.Fatal("years fail")
	}
}

func TestSolarCycle(t *testing.T) {
	if phase := SolarCyclePhase(SolarCycle25MinJD); !floats.EqualWithinAbs(phase, 0, 1e-12) {
		t.Fatalf("phase at reference minimum fail: %f", phase)
	}
	if phase := SolarCyclePhase(SolarCycle25MinJD + SolarCycleDays); !floats.EqualWithinAbs(phase, 0, 1e-12) {
		t.Fatalf("phase one cycle later fail: %f", phase)
	}
	if phase := SolarCyclePhase(SolarCycle25MinJD - SolarCycleDays/2); !floats.EqualWithinAbs(phase, 0.5, 1e-12) {
		t.Fatalf("phase half cycle earlier fail: %f", phase)
	}
	if name := SolarCycleName(SolarCycle25MinJD); name != "Solar Min" {
		t.Fatalf("name at minimum fail: %s", name)
	}
	if name := SolarCycleName(SolarCycle25MinJD + SolarCycleDays/2); name != "Solar Max" {
		t.Fatalf("name at maximum fail: %s", name)
	}
	if name := SolarCycleName(SolarCycle25MinJD + SolarCycleDays/4); name != "Rising" {
		t.Fatalf("name rising fail: %s", name)
	}
	if name := SolarCycleName(SolarCycle25MinJD + 3*SolarCycleDays/4); name != "Declining" {
		t.Fatalf("name declining fail: %s", name)
	}
}
