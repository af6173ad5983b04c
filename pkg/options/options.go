package options

import "io"

var DefaultOptions = TokenizerOptions{
	Mode:        "C",
	Debug:       false,
	DebugOutput: nil, // stderr
	UseMmap:     true,
}

type TokenizerOptions struct {
	Mode        string    // split mode letter used when the caller has no mode of its own
	Debug       bool      // dump every lattice built
	DebugOutput io.Writer // destination of the lattice dump
	UseMmap     bool      // map the dictionary file instead of reading it into memory
}

type Options interface {
	Apply(options *TokenizerOptions)
}

type FuncConfig struct {
	ops func(options *TokenizerOptions)
}

func (w FuncConfig) Apply(conf *TokenizerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *TokenizerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) TokenizerOptions {
	conf := DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	return conf
}

func WithMode(mode string) Options {
	return NewFuncOption(func(options *TokenizerOptions) {
		options.Mode = mode
	})
}

func WithDebug() Options {
	return NewFuncOption(func(options *TokenizerOptions) {
		options.Debug = true
	})
}

func WithDebugOutput(w io.Writer) Options {
	return NewFuncOption(func(options *TokenizerOptions) {
		options.DebugOutput = w
	})
}

func WithoutMmap() Options {
	return NewFuncOption(func(options *TokenizerOptions) {
		options.UseMmap = false
	})
}
