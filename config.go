package helio

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = defaultConfig()
)

// _helioconfig is a "hidden" struct, just use `helioConfig`.
type _helioconfig struct {
	VSOP87    bool
	VSOP87Dir string

	// Interstellar medium parameters. Density in cm^-3, temperature in K,
	// inflow speed in km/s, field magnitude in nT, inflow source direction in
	// galactic coordinates (degrees).
	ISMDensity     float64
	ISMTemperature float64
	ISMSpeed       float64
	ISMField       float64
	ISMLongitude   float64
	ISMLatitude    float64

	CacheTTL        time.Duration
	CacheMaxEntries int
}

func defaultConfig() _helioconfig {
	return _helioconfig{
		ISMDensity:     0.1,
		ISMTemperature: 6300,
		ISMSpeed:       26.3,
		ISMField:       0.245,
		ISMLongitude:   255.4,
		ISMLatitude:    5.2,

		CacheTTL:        60 * time.Second,
		CacheMaxEntries: 1000,
	}
}

// helioConfig returns the kernel configuration. Unlike a mission scenario, a
// missing configuration is not an error: every parameter has a physically
// sensible default and the environment variable `HELIO_CONFIG` only points at
// an optional conf.toml overriding them.
func helioConfig() _helioconfig {
	if cfgLoaded {
		return config
	}
	cfgLoaded = true
	confPath := os.Getenv("HELIO_CONFIG")
	if confPath == "" {
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		// Optional file: keep the defaults.
		return config
	}

	if viper.IsSet("VSOP87.enabled") {
		config.VSOP87 = viper.GetBool("VSOP87.enabled")
		config.VSOP87Dir = viper.GetString("VSOP87.directory")
	}
	setFloat := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}
	setFloat("ism.density", &config.ISMDensity)
	setFloat("ism.temperature", &config.ISMTemperature)
	setFloat("ism.speed", &config.ISMSpeed)
	setFloat("ism.field", &config.ISMField)
	setFloat("ism.longitude", &config.ISMLongitude)
	setFloat("ism.latitude", &config.ISMLatitude)
	if viper.IsSet("cache.ttl") {
		config.CacheTTL = viper.GetDuration("cache.ttl")
	}
	if viper.IsSet("cache.max_entries") {
		config.CacheMaxEntries = viper.GetInt("cache.max_entries")
	}
	return config
}
