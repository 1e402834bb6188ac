package config

const (
	defaultToSortDir        = "to_sort"
	defaultUnprocessableDir = "unprocessable"
	defaultStateDir         = ".organizer"
	defaultProbeBinary      = "ffprobe"
	defaultProbeTimeout     = 30
	defaultLogFormat        = "auto"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Folders: Folders{
			ToSort:        defaultToSortDir,
			Unprocessable: defaultUnprocessableDir,
			State:         defaultStateDir,
		},
		Probe: Probe{
			Binary:         defaultProbeBinary,
			TimeoutSeconds: defaultProbeTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
