// Package scene describes the seven decorative page sections as
// configuration values of one generic particle system.
//
// A [Section] lists its layers (entity factory, update rule, draw rule) and
// optional connection lines. [Section.Instantiate] seeds a [System] for a
// given canvas size; the engine then calls [System.Advance] and
// [System.Draw] once per frame.
//
// Sections are looked up by name or canvas id through a [Registry].
package scene
