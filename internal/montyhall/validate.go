package montyhall

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Params fixes the door counts for a run.
type Params struct {
	Doors      int `yaml:"doors"`       // n_door
	LeftClosed int `yaml:"left_closed"` // n_leftclose, doors still closed after the host acts
}

// Validate checks LeftClosed >= 2 and Doors >= LeftClosed+1.
func (p Params) Validate() error {
	if p.LeftClosed < 2 {
		return fmt.Errorf("%w: n_leftclose must be >= 2 (got %d)", ErrInvalidParameter, p.LeftClosed)
	}
	if p.Doors <= p.LeftClosed {
		return fmt.Errorf("%w: n_door must be >= n_leftclose + 1 (got n_door=%d, n_leftclose=%d)",
			ErrInvalidParameter, p.Doors, p.LeftClosed)
	}
	return nil
}
