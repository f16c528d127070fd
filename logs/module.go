package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one ingest run. Handlers stamp it onto every record
// logged under a context carrying it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
