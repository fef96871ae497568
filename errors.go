package textpipe

import "errors"

// Errors shared by the components of the pipeline.
var (
	// ErrNoProvider is returned by constructors if no Unicode data provider is given.
	ErrNoProvider = errors.New("textpipe: no Unicode data provider")
	// ErrBufferTooSmall is returned by operations writing to caller-supplied buffers.
	ErrBufferTooSmall = errors.New("textpipe: output buffer too small")
)
