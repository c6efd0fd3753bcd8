package config

// Merge layers local over global: any field set in local wins, unset fields
// fall through to global. Neither input is modified.
func Merge(global, local *Config) *Config {
	out := &Config{}
	if global != nil {
		*out = *global
	}
	if local == nil {
		return out
	}
	if local.ReportPath != "" {
		out.ReportPath = local.ReportPath
	}
	if local.CompactJSON {
		out.CompactJSON = true
	}
	if local.NoColor {
		out.NoColor = true
	}
	return out
}
