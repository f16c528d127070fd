package configs

import (
	"errors"

	"github.com/linetok/linetok/cmds"
	"github.com/reusee/dscope"
	"github.com/xyproto/env/v2"
)

type Module struct {
	dscope.Module
}

var ErrValueNotFound = errors.New("value not found")

var configFlag = cmds.Collect[string]("config")

// FilePaths lists the config files to load, earlier files winning.
// Sources: repeated `config <path>` commands, then the LINETOK_CONFIG
// environment variable.
type FilePaths []string

func (Module) FilePaths() FilePaths {
	var paths FilePaths
	paths = append(paths, *configFlag...)
	if p := env.Str("LINETOK_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	return paths
}

func (Module) Loader(paths FilePaths) Loader {
	return NewLoader(paths, Schema)
}
