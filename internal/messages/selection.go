package messages

// Selection output messages.
const (
	SelectionUnknownFormatFmt = "unknown output format %q (want toml, yaml, or json)"
	SelectionEncodeFailedFmt  = "failed to encode selection as %s: %w"
)
