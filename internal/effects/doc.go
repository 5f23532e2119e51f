// Package effects holds the concrete animations and the named sources
// that group them for the registry.
//
// Every effect draws in a logical world of env.Width x env.Height units
// (1200x800 by default) and assumes a 60 Hz frame step.
package effects
