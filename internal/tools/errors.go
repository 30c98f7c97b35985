package tools

import "errors"

// ErrMissingArgument indicates a required tool argument was not supplied.
var ErrMissingArgument = errors.New("missing required argument")

// ErrInvalidArgument indicates a tool argument has the wrong JSON type.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownTool indicates no tool is registered under the requested name.
var ErrUnknownTool = errors.New("unknown tool")
