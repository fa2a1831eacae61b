package montyhall

// Outcome reports one trial's result under both strategies.
type Outcome struct {
	Stayed   bool // initial pick was the prize door
	Switched bool // door taken after switching was the prize door
}

// SimulateOnce plays one game.
// - The prize door and the player's pick are drawn independently from [0, Doors).
// - The host never opens the prize door or the picked door, and leaves
//   LeftClosed doors closed in total, choosing the rest uniformly.
// - Switching draws uniformly from the closed doors other than the pick.
// If the pick is the prize door, the switch pool therefore never holds the prize.
// A nil rng falls back to DefaultRNG().
func SimulateOnce(p Params, rng RandomSource) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	var s simulator
	return s.run(p, rng), nil
}

// simulator keeps scratch state across trials of one run.
// Memory per trial scales with LeftClosed, not Doors: the doors the host may
// open are never materialized, only the swapped slots of the shuffle.
type simulator struct {
	swapped map[int]int // sparse Fisher-Yates slots that differ from restAt
	pool    []int       // switch candidates
}

// restAt returns the i-th door in ascending order, skipping car and chosen.
func restAt(i, car, chosen int) int {
	lo, hi := min(car, chosen), max(car, chosen)
	d := i
	if d >= lo {
		d++
	}
	if lo != hi && d >= hi {
		d++
	}
	return d
}

// run assumes p is valid.
func (s *simulator) run(p Params, rng RandomSource) Outcome {
	car := rng.IntN(p.Doors)
	chosen := rng.IntN(p.Doors)

	untouched := 1
	if chosen != car {
		untouched = 2
	}
	n := p.Doors - untouched

	if s.swapped == nil {
		s.swapped = make(map[int]int)
	}
	clear(s.swapped)
	slot := func(i int) int {
		if d, ok := s.swapped[i]; ok {
			return d
		}
		return restAt(i, car, chosen)
	}

	// partial Fisher-Yates: the first k slots are the doors the host leaves closed
	k := p.LeftClosed - untouched
	s.pool = s.pool[:0]
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		di, dj := slot(i), slot(j)
		s.swapped[j] = di
		s.pool = append(s.pool, dj)
	}

	// pool = host-left doors + car - chosen
	if car != chosen {
		s.pool = append(s.pool, car)
	}

	changed := s.pool[rng.IntN(len(s.pool))]
	return Outcome{
		Stayed:   chosen == car,
		Switched: changed == car,
	}
}
