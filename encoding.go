package unibinary

// An Encoding selects which packing strategies the encoder may use.
// Every Encoding produces text that [Decode] accepts.
type Encoding struct {
	asciiPairs bool
	moduloRuns bool
}

// EncodingOption configures an [Encoding] created by [NewEncoding].
type EncodingOption func(e *Encoding)

// NewEncoding returns an Encoding with ASCII-pair packing enabled and
// runs split into chunks of at most [MaxRun] bytes.
func NewEncoding(opts ...EncodingOption) *Encoding {
	e := &Encoding{asciiPairs: true}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithoutASCIIPairs disables packing two ASCII bytes into one U12a
// symbol. Output then only contains U8 and U12 symbols.
func WithoutASCIIPairs() EncodingOption {
	return func(e *Encoding) {
		e.asciiPairs = false
	}
}

// ModuloRunChunking reduces each run length modulo 4096 instead of
// capping it at [MaxRun]. Runs whose length is a multiple of 4096 are then
// written without the run opcode. This reproduces, symbol for symbol,
// text written by encoders that reduced runs modulo 4096.
func ModuloRunChunking() EncodingOption {
	return func(e *Encoding) {
		e.moduloRuns = true
	}
}

// ASCIIPairs reports whether ASCII-pair packing is enabled.
func (e *Encoding) ASCIIPairs() bool {
	return e.asciiPairs
}

var (
	// StdEncoding packs ASCII pairs and caps runs at MaxRun.
	StdEncoding = NewEncoding()

	// BinaryEncoding never emits U12a symbols.
	BinaryEncoding = NewEncoding(WithoutASCIIPairs())
)
