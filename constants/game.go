package constants

import "time"

// Frame Timing Constants
const (
	// FrameUpdateInterval is the fallback frame interval when the host has no vsync (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered depth of the terminal event channel
	EventQueueSize = 256
)

// Physics Step Constants
const (
	// PhysicsTimeStep is the duration of one fixed sub-step in seconds
	PhysicsTimeStep = 1.0 / 60.0

	// PhysicsSubSteps is how many fixed sub-steps run per rendered frame
	PhysicsSubSteps = 4

	// VelocityIterations is the solver velocity iteration count per sub-step
	VelocityIterations = 10

	// PositionIterations is the solver position iteration count per sub-step
	PositionIterations = 10

	// Gravity is the vertical acceleration in surface pixel units (physics Y points up)
	Gravity = -10.0
)

// Body Material Constants
const (
	// SurfaceFriction applies to ground, curve and ball fixtures
	SurfaceFriction = 0.5

	// SurfaceRestitution applies to ground, basket and ball fixtures
	SurfaceRestitution = 0.5

	// BallDensity is the ball fixture density
	BallDensity = 1.0

	// BallAngularDamping slows the ball's spin
	BallAngularDamping = 0.1

	// SensorRadius is the radius of the basket point sensor
	SensorRadius = 1.0
)

// Curve Constants
const (
	// NumCurvePoints is the default sample count of the ramp curve
	NumCurvePoints = 30

	// MinCurvePoints and MaxCurvePoints bound the configurable sample count
	MinCurvePoints = 30
	MaxCurvePoints = 50
)

// Scoring Constants
const (
	// ScoreIncrement is awarded per frame while the ball is at or above basket level
	ScoreIncrement = 100
)
