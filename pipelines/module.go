package pipelines

import (
	"runtime"

	"github.com/linetok/linetok/configs"
	"github.com/linetok/linetok/logs"
	"github.com/linetok/linetok/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// WorkerCount bounds concurrent tokenize calls. From pipeline.workers in
// the config, defaulting to GOMAXPROCS.
type WorkerCount int

func (Module) WorkerCount(loader configs.Loader) WorkerCount {
	workers := configs.First[*int](loader, "pipeline.workers")
	return WorkerCount(vars.FirstNonZero(
		vars.DerefOrZero(workers),
		runtime.GOMAXPROCS(0),
	))
}
