package config

import "errors"

var (
	// ErrReadingFile indicates that a configuration file named by the
	// sources could not be read.
	ErrReadingFile = errors.New("error reading config file")
	// ErrDecodingFile indicates that a configuration file was read but its
	// content is malformed or fails validation.
	ErrDecodingFile = errors.New("error decoding config file")
)
