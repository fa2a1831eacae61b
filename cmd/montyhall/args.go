package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xtding233/montyhall/internal/config"
)

var (
	ErrArgumentCount = errors.New("wrong number of arguments")
	ErrArgumentParse = errors.New("argument is not a non-negative integer")
)

const usageLine = "pass three args: (n_door, n_leftclose, n_trial) like '3 2 100', or none for 3 2 1000"

// applyArgs overrides the door counts and trial count when exactly three
// positional arguments are given; zero arguments keep cfg as loaded.
func applyArgs(cfg *config.Config, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 3:
	default:
		return fmt.Errorf("%w: got %d, want 0 or 3", ErrArgumentCount, len(args))
	}

	names := [3]string{"n_door", "n_leftclose", "n_trial"}
	var v [3]int
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s=%q", ErrArgumentParse, names[i], s)
		}
		v[i] = n
	}
	cfg.Doors, cfg.LeftClosed, cfg.Trials = v[0], v[1], v[2]
	return nil
}
