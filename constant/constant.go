package constant

const (
	// ProjectName is used for window titles, config dirs and env prefixes.
	ProjectName = "movebox"
	// EnvPrefix is the viper env prefix, e.g. MOVEBOX_DURATION_MS.
	EnvPrefix = "MOVEBOX"
)
