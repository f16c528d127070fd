package pipelines

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/linetok/linetok/configs"
	"github.com/linetok/linetok/logs"
	"github.com/linetok/linetok/modes"
	"github.com/reusee/dscope"
	"github.com/stretchr/testify/require"
)

func testScope(t *testing.T, logOutput *bytes.Buffer) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.FilePaths {
			return nil
		},
		func() logs.Writer {
			return logOutput
		},
	)
}

func TestRun(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testScope(t, logOutput).Call(func(
		run Run,
	) {
		input := strings.NewReader("a b\n\"c d\"\n\n[e]\n")
		output := new(bytes.Buffer)
		err := run(context.Background(), input, output)
		require.NoError(t, err)

		expected := strings.Join([]string{
			"0\t1\tplain\t\"a\"",
			"2\t3\tplain\t\"b\"",
			"0\t5\tquoted\t\"c d\"",
			"0\t3\tbracketed\t\"[e]\"",
			"",
		}, "\n")
		require.Equal(t, expected, output.String())

		require.Contains(t, logOutput.String(), "ingest done")
	})
}

func TestRunPreservesOrder(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testScope(t, logOutput).Call(func(
		run Run,
	) {
		var in strings.Builder
		for i := range 500 {
			fmt.Fprintf(&in, "line%d\n", i)
		}
		output := new(bytes.Buffer)
		err := run(context.Background(), strings.NewReader(in.String()), output)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
		require.Len(t, lines, 500)
		for i, line := range lines {
			require.Equal(t, fmt.Sprintf("0\t%d\tplain\t%q", len(fmt.Sprintf("line%d", i)), fmt.Sprintf("line%d", i)), line)
		}
	})
}

func TestRunCancelled(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testScope(t, logOutput).Call(func(
		run Run,
	) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := run(ctx, strings.NewReader("a\nb\n"), new(bytes.Buffer))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunEmptyInput(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testScope(t, logOutput).Call(func(
		run Run,
	) {
		output := new(bytes.Buffer)
		err := run(context.Background(), strings.NewReader(""), output)
		require.NoError(t, err)
		require.Empty(t, output.String())
	})
}

func TestRunInfluxFormat(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testScope(t, logOutput).Fork(
		func() OutputFormat {
			return FormatInflux
		},
	).Call(func(
		run Run,
	) {
		output := new(bytes.Buffer)
		err := run(context.Background(), strings.NewReader("a \"b c\"\nd\n"), output)
		require.NoError(t, err)

		expected := strings.Join([]string{
			`tokens,kind=plain line=0i,start=0i,end=1i,text="a"`,
			`tokens,kind=quoted line=0i,start=2i,end=7i,text="b c"`,
			`tokens,kind=plain line=1i,start=0i,end=1i,text="d"`,
			``,
		}, "\n")
		require.Equal(t, expected, output.String())
	})
}

func TestOutputFormatDefault(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		format OutputFormat,
	) {
		require.Equal(t, FormatTSV, format)
	})
}

func TestMode(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		mode modes.Mode,
	) {
		require.Equal(t, modes.ModeDevelopment, mode)
	})
}

func TestWorkerCount(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		workers WorkerCount,
	) {
		require.Greater(t, int(workers), 0)
	})
}
