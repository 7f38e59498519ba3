package config

import "github.com/ilyakaznacheev/cleanenv"

// readEnv is a seam for tests.
var readEnv = cleanenv.ReadEnv

// parseEnv overlays variables named by the env tags on Config. Unset
// variables keep whatever the defaults and the JSON file provided.
func parseEnv(config *Config) {
	if err := readEnv(config); err != nil {
		panic(err)
	}
}
