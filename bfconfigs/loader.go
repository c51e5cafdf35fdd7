package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

func init() {
	cmds.Describe("-config", "load a config file, may be repeated, earlier files win")
}

// ConfigPaths are the existing config files, in load order.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	// command line
	paths := ConfigPaths(slices.Clone(*configFiles))

	filenames := []string{
		"bf.cue",
		".bf.cue",
	}
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return paths
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}

// NewLoader loads paths against the schema, earlier paths win.
func NewLoader(paths ...string) configs.Loader {
	return configs.NewLoader(paths, schema)
}
