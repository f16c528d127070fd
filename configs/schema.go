package configs

// Schema is the closed CUE schema every config file must satisfy.
const Schema = `
tokenizer?: {
	quote_chars?:   string
	delimiters?:    string
	escape_char?:   string
	bracket_pairs?: [...{
		open:  string
		close: string
	}]
}
pipeline?: {
	workers?: int & >0
	format?:  "tsv" | "influx"
}
`
