package pipelines

import (
	"fmt"
	"io"
	"strconv"

	"github.com/linetok/linetok/configs"
	"github.com/linetok/linetok/tokens"
	"github.com/linetok/linetok/vars"
)

// OutputFormat selects the record encoding: tab-separated fields, or
// InfluxDB line protocol with the token kind as a tag. From
// pipeline.format in the config, defaulting to tsv.
type OutputFormat string

const (
	FormatTSV    OutputFormat = "tsv"
	FormatInflux OutputFormat = "influx"
)

func (Module) OutputFormat(loader configs.Loader) OutputFormat {
	format := configs.First[*string](loader, "pipeline.format")
	return OutputFormat(vars.FirstNonZero(
		vars.DerefOrZero(format),
		string(FormatTSV),
	))
}

func writeRecord(w io.Writer, format OutputFormat, line int, token tokens.Token) {
	switch format {
	case FormatInflux:
		fmt.Fprintf(w, "tokens,kind=%s line=%di,start=%di,end=%di,text=%s\n",
			token.Kind, line, token.Start, token.End, strconv.Quote(token.Text))
	default:
		fmt.Fprintf(w, "%d\t%d\t%s\t%q\n",
			token.Start, token.End, token.Kind, token.Text)
	}
}
