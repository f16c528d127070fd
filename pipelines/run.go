package pipelines

import (
	"bufio"
	"context"
	"io"

	"github.com/linetok/linetok/logs"
	"github.com/linetok/linetok/modes"
	"github.com/linetok/linetok/syncs"
	"github.com/linetok/linetok/tokens"
)

const maxLineBytes = 1024 * 1024

// Run tokenizes every line of input and writes one record per token to
// output, in input order. Lines are tokenized concurrently on up to
// WorkerCount workers; tokenize calls share no state, so workers need no
// locking.
type Run func(ctx context.Context, input io.Reader, output io.Writer) error

func (Module) Run(
	config tokens.Config,
	workers WorkerCount,
	format OutputFormat,
	mode modes.Mode,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, input io.Reader, output io.Writer) error {
		ctx, _ = newSpan(ctx, "")

		semaphore := syncs.NewSemaphore(int(workers))
		results := make(chan chan []tokens.Token, workers)

		// emitter preserves input order: result slots are queued as lines
		// arrive, each filled by its worker when done
		var numTokens int
		done := make(chan error, 1)
		go func() {
			w := bufio.NewWriter(output)
			lineNum := 0
			for slot := range results {
				parsed := <-slot
				if mode == modes.ModeDevelopment {
					logger.DebugContext(ctx, "line tokenized",
						"line", lineNum,
						"tokens", len(parsed),
					)
				}
				for _, token := range parsed {
					numTokens++
					writeRecord(w, format, lineNum, token)
				}
				lineNum++
			}
			done <- w.Flush()
		}()

		var numLines int
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			line := scanner.Text()
			if err := semaphore.Acquire(ctx); err != nil {
				close(results)
				<-done
				return logs.WrapSpan(ctx, err)
			}
			slot := make(chan []tokens.Token, 1)
			results <- slot
			numLines++
			go func() {
				defer semaphore.Release()
				slot <- config.Tokenize(line)
			}()
		}
		close(results)
		if err := <-done; err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if err := scanner.Err(); err != nil {
			return logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "ingest done",
			"lines", numLines,
			"tokens", numTokens,
		)
		return nil
	}
}
