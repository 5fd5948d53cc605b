package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/superx"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// defaultSolverConfigPath is read on every run and created if missing
func defaultSolverConfigPath() string {
	return filepath.Join(getUserHomeDir(), ".config", "superx", "config.yaml")
}

// loadDefaultConfig replaces superx.DefaultConfig with the user's default
// solver config, writing the built in one first if none exists
func loadDefaultConfig(cfgPath string) {
	if fileutil.FileExists(cfgPath) {
		cfg, err := superx.NewConfig(cfgPath)
		if err == nil {
			superx.DefaultConfig = *cfg
			return
		}
		gologger.Error().Msgf("failed to parse default config %v got: %v", cfgPath, err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", cfgPath, err)
		return
	}
	if err := os.WriteFile(cfgPath, superx.DefaultConfigBin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", cfgPath, err)
	}
}
