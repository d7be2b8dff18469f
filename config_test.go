package helio

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestConfigDefaults(t *testing.T) {
	conf := helioConfig()
	if conf.VSOP87 {
		t.Fatal("VSOP87 must default to disabled")
	}
	if !floats.EqualWithinAbs(conf.ISMDensity, 0.1, 1e-12) {
		t.Fatalf("ISM density default fail: %f", conf.ISMDensity)
	}
	if !floats.EqualWithinAbs(conf.ISMTemperature, 6300, 1e-12) {
		t.Fatalf("ISM temperature default fail: %f", conf.ISMTemperature)
	}
	if !floats.EqualWithinAbs(conf.ISMSpeed, 26.3, 1e-12) {
		t.Fatalf("ISM speed default fail: %f", conf.ISMSpeed)
	}
	if conf.CacheTTL != 60*time.Second {
		t.Fatalf("cache TTL default fail: %s", conf.CacheTTL)
	}
	if conf.CacheMaxEntries != 1000 {
		t.Fatalf("cache ceiling default fail: %d", conf.CacheMaxEntries)
	}
}

func TestDefaultISMUsesConfig(t *testing.T) {
	ism := DefaultISM()
	conf := helioConfig()
	if ism.Density != conf.ISMDensity || ism.Temperature != conf.ISMTemperature {
		t.Fatal("ISM parameters must come from the configuration")
	}
	if !floats.EqualWithinAbs(norm(ism.Nose), 1, 1e-12) {
		t.Fatal("nose direction must be a unit vector")
	}
}
