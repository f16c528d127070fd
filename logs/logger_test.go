package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")

		line := buf.String()
		if !strings.Contains(line, "msg=test") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "hello=world!") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "app=linetok") {
			t.Fatalf("got %v", line)
		}
	})
}
