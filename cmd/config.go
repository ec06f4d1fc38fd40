package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Defaults are the fallback inputs used when a flag is left at zero. They
// can be overridden with a gorcc.ini next to the binary or in the working
// directory:
//
//	[materials]
//	fc = 28
//	fy = 415
//
//	[analysis]
//	points = 50
//	cover  = 65
type Defaults struct {
	Fc     float64
	Fy     float64
	Points int
	Cover  float64
}

const configFile = "gorcc.ini"

// loadDefaults reads gorcc.ini if present; missing file or keys fall back
// to the NSCP-typical values used throughout the examples.
func loadDefaults() Defaults {
	defaults := Defaults{
		Fc:     28,
		Fy:     415,
		Points: 50,
		Cover:  65,
	}

	if _, err := os.Stat(configFile); err != nil {
		return defaults
	}

	file, err := ini.Load(configFile)
	if err != nil {
		log.Warnf("config file %s unreadable, using defaults: %v", configFile, err)
		return defaults
	}

	defaults.Fc = file.Section("materials").Key("fc").MustFloat64(defaults.Fc)
	defaults.Fy = file.Section("materials").Key("fy").MustFloat64(defaults.Fy)
	defaults.Points = file.Section("analysis").Key("points").MustInt(defaults.Points)
	defaults.Cover = file.Section("analysis").Key("cover").MustFloat64(defaults.Cover)

	log.Debugf("loaded defaults from %s: %+v", configFile, defaults)
	return defaults
}
