package core

// Color is the palette slot of a screen cell.
// The platform layer maps each slot to a terminal color.
type Color uint8

// Palette slots used by the WideBird scene.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorObstacle
	ColorPlayer
	ColorSun
	ColorScore
	ColorPanel
	ColorHighlight
)
