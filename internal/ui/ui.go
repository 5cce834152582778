// Package ui draws the HUD side panel and the pointer overlay on top of the
// painted world. Without the ebiten build tag the drawing types are no-ops;
// control stepping and the tile legend are shared by both builds.
package ui

import (
	"tileworld/internal/core"
	"tileworld/internal/session"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statsProvider interface {
	Stats() session.Stats
}
