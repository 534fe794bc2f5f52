package ethping

import (
	"fmt"
	"runtime/debug"
)

const (
	majorVersion = 0
	minorVersion = 1
	patchVersion = 0
)

func Version() string {
	return fmt.Sprintf("v%d.%d.%d %s", majorVersion, minorVersion, patchVersion, vcsInfo())
}

func vcsInfo() string {
	var revision string
	var time string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.time":
				time = setting.Value
			case "vcs.modified":
				modified = setting.Value == "true"
			}
		}
	}

	if modified {
		revision += "-dirty"
	}
	return "git:" + revision + ", at " + time
}
