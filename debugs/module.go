package debugs

import (
	"github.com/linetok/linetok/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
