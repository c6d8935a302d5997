// Package csv provides configurable options for CSV parsing and writing.
package csv

import "github.com/go-kit/log"

// ReaderOptions configures CSV parsing.
type ReaderOptions struct {
	// Logger receives a debug line per parse with the table size or the
	// failure position.
	// Default: a no-op logger
	Logger log.Logger
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Logger: log.NewNopLogger(),
	}
}

func (o ReaderOptions) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

// WriterOptions configures CSV rendering.
type WriterOptions struct {
	// UseCRLF controls whether to use \r\n (true) or \n (false) as the line terminator.
	// Default: false (use \n)
	UseCRLF bool
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		UseCRLF: false,
	}
}
