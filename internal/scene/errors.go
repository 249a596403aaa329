package scene

import "errors"

// ErrUnknownSection is returned when a section name is not registered.
var ErrUnknownSection = errors.New("scene: unknown section")
