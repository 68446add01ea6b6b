package config

// DefaultChangelogPath is the changelog file used when no path is
// configured or passed on the command line.
const DefaultChangelogPath = "CHANGELOG.md"

// GetDefaults returns the default configuration values as a flat map of
// koanf keys.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"path":               DefaultChangelogPath,
		"tag_prefix":         "",
		"default_section":    "",
		"skip_confirmations": false,
	}
}
