package terminal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sporadisk/datekit/parameter"
)

const (
	AngleRadians = "radians"
	AngleDegrees = "degrees"
)

type Client struct {
	InstantLayout string // strftime layout; ISO 8601 when empty
	AngleUnit     string
	Out           io.Writer
	Now           func() time.Time
}

func (c *Client) Init() error {
	unit, err := parameter.ValidateOr(c.AngleUnit, AngleRadians, []string{AngleRadians, AngleDegrees})
	if err != nil {
		return fmt.Errorf("validation failure for angleUnit: %w", err)
	}
	c.AngleUnit = unit

	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return nil
}
