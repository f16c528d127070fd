package main

import (
	"context"
	"os"

	"github.com/linetok/linetok/cmds"
	"github.com/linetok/linetok/debugs"
	"github.com/linetok/linetok/logs"
	"github.com/linetok/linetok/modes"
	"github.com/linetok/linetok/pipelines"
	"github.com/linetok/linetok/tokens"
	"github.com/linetok/linetok/vars"
	"github.com/reusee/dscope"
	"github.com/xyproto/env/v2"
)

var (
	inputFlag = cmds.Var[string]("input")
	replFlag  = cmds.Switch("-repl")
)

func init() {
	cmds.GlobalExecutor.Define("-version", cmds.Func(func() {
		os.Stdout.WriteString("linetok (devel)\n")
		os.Exit(0)
	}).Desc("print version"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(pipelines.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	if *replFlag {
		scope.Call(func(
			tap debugs.Tap,
			config tokens.Config,
		) {
			tap(context.Background(), "tokenizer", map[string]any{
				"tokenize": config.Tokenize,
				"defaults": tokens.DefaultConfig(),
			})
		})
		return
	}

	var input = os.Stdin
	if path := vars.FirstNonZero(*inputFlag, env.Str("LINETOK_INPUT")); path != "" {
		f, err := os.Open(path)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		input = f
	}

	scope.Call(func(
		run pipelines.Run,
		logger logs.Logger,
	) {
		if err := run(context.Background(), input, os.Stdout); err != nil {
			logger.Error("ingest failed", "error", err)
			os.Exit(1)
		}
	})
}
