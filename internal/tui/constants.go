package tui

import "time"

type Mode int

const (
	ModeBrowse Mode = iota
	ModeHelp
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmOverwriteExport
)

type MapView int

const (
	MapStandard MapView = iota
	MapSatellite
	MapTerrain
	numMapViews
)

func (v MapView) String() string {
	switch v {
	case MapStandard:
		return "Standard"
	case MapSatellite:
		return "Satellite"
	case MapTerrain:
		return "Terrain"
	default:
		return "Unknown"
	}
}

const (
	navBarHeight    = 3 // bordered single row
	statusBarHeight = 1
	spacerHeight    = 2 // band between sections
	minViewport     = 4

	mapWidth      = 56
	mapHeight     = 16
	elevationStep = 5

	barPlotRows  = 10
	pieRadius    = 6
	linePlotRows = 10

	videoTick  = 100 * time.Millisecond
	scrollTick = 30 * time.Millisecond
)
