package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/physics"
)

// animate is the frame callback. It runs the fixed sub-steps, accrues score while the
// ball is at or above basket level, and reschedules itself until the mode changes or
// the ball comes to rest
func (c *Controller) animate() {
	if c.session.Mode != ModePlay || !c.animating || c.ball == nil {
		c.session.Score = 0
		c.stopAnimating("mode")
		return
	}

	c.stats.frames.Add(1)
	for i := 0; i < c.physics.SubSteps; i++ {
		c.world.Step(c.physics.TimeStep, c.physics.VelocityIterations, c.physics.PositionIterations)
	}
	c.stats.steps.Add(int64(c.physics.SubSteps))

	if c.ball.Position().Y >= c.basket.ScoreLevel() {
		c.session.Score += constants.ScoreIncrement
	}

	v := c.ball.LinearVelocity()
	c.stats.ballSpeed.Set(v.Hypot())
	if v.X == 0 && v.Y == 0 {
		c.stopAnimating("rest")
		return
	}

	c.frames.RequestFrame(c.animate)
}

func (c *Controller) stopAnimating(reason string) {
	if !c.animating {
		return
	}
	c.animating = false
	c.stats.animating.Store(false)

	c.log.Info("round finished",
		zap.Stringer("round", c.round),
		zap.String("reason", reason),
		zap.Int("score", c.session.Score),
		zap.Int("high_score", c.session.HighScore),
		zap.Bool("scored", c.session.Scored),
	)
}

// onContact runs inside World.Step
func (c *Controller) onContact(a, b physics.Tag) {
	switch {
	case physics.Involves(a, b, physics.TagGround):
		c.stats.groundContacts.Add(1)
		c.session.Score = 0

	case physics.Involves(a, b, physics.TagBasket):
		c.stats.basketContacts.Add(1)
		if c.session.Scored {
			return
		}
		c.session.Scored = true
		if c.session.Score > c.session.HighScore {
			c.session.HighScored = true
			c.session.HighScore = c.session.Score
		}
		c.log.Info("basket",
			zap.Stringer("round", c.round),
			zap.Int("score", c.session.Score),
			zap.Bool("high_score", c.session.HighScored),
		)
	}
}
