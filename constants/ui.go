package constants

// UI Layout Constants, in surface pixels
const (
	// UIMargin separates the toolbar and the basket separator from their neighbours
	UIMargin = 5.0

	// IconSize is the edge of one toolbar icon cell
	IconSize = 64.0

	// BasketSize is the edge of the square basket placement
	BasketSize = 128.0

	// BasketWallInset is the horizontal inset of the basket floor corners
	BasketWallInset = 18.0

	// BasketFloorLift raises the basket floor above the placement's bottom edge
	BasketFloorLift = 5.0

	// BallRadius is the radius of the dropped ball
	BallRadius = IconSize / 2

	// ControlRadius is the hit radius of a curve control handle
	ControlRadius = 30.0

	// ToolbarButtons is the declared number of toolbar icons
	ToolbarButtons = 3

	// ViewportFill is the fraction of the viewport used by the drawing surface
	ViewportFill = 0.95
)

// HUD Placement Constants, offsets from the surface bottom edge
const (
	// ScoreTextOffset is the distance of the score line from the bottom
	ScoreTextOffset = 40.0

	// HighScoreTextOffset is the distance of the high score line from the bottom
	HighScoreTextOffset = 80.0

	// HUDTextLeft is the left edge of HUD text
	HUDTextLeft = 20.0

	// SeparatorDashes is the dash count of the basket separator line
	SeparatorDashes = 20
)

// Terminal Cell Geometry
const (
	// CellWidth is the surface pixel width mapped to one terminal column
	CellWidth = 8.0

	// CellHeight is the surface pixel height mapped to one terminal row
	CellHeight = 16.0

	// InstructionRows is the height of the instruction line above the surface, in rows
	InstructionRows = 1

	// InstructionText is shown above the drawing surface
	InstructionText = "[1] draw ramp: click two points  [2] edit: drag handles  [3] play: click to drop  [q] quit"
)
