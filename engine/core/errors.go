package core

import (
	"errors"
)

var (
	ErrNilShape          = errors.New("shape is nil")
	ErrUnknownShape      = errors.New("unknown shape kind")
	ErrIndexOutOfRange   = errors.New("index references a vertex that does not exist")
	ErrIndexCount        = errors.New("index count is not a multiple of the primitive size")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document contains no shapes")
	ErrAmbiguousEntry    = errors.New("entry must declare exactly one shape")
	ErrUnknownPattern    = errors.New("unknown pattern kind")
	ErrUnknownVisibility = errors.New("unknown visibility kind")
	ErrUnknownWave       = errors.New("unknown wave mode or kind")
	ErrLibraryClosed     = errors.New("shape library already closed")
	ErrUnknown           = errors.New("unknown")
)
