package world

// LineCell is one column of a decorative scrolling line.
type LineCell int

const (
	Plain LineCell = iota
	StoneStart
	StoneMiddle
	StoneEnd
)

func (c LineCell) String() string {
	switch c {
	case Plain:
		return "Plain"
	case StoneStart:
		return "StoneStart"
	case StoneMiddle:
		return "StoneMiddle"
	case StoneEnd:
		return "StoneEnd"
	default:
		return "Unknown"
	}
}

// lineCell maps the last three countdown values to the stone marker.
func lineCell(observed uint) LineCell {
	switch observed {
	case 2:
		return StoneStart
	case 1:
		return StoneMiddle
	case 0:
		return StoneEnd
	default:
		return Plain
	}
}

// grainCell marks a grain when the countdown observes zero. The ground uses
// the same evaluate-then-decrement countdown as the lines, so grains fall
// exactly n ticks apart for a drawn n, within the grain range.
func grainCell(observed uint) bool {
	return observed == 0
}

// scenery holds the top and bottom lines and the ground strip.
type scenery struct {
	topStone    Marker[LineCell]
	bottomStone Marker[LineCell]
	grain       Marker[bool]

	topLine    []LineCell
	bottomLine []LineCell
	ground     []bool
}

func newScenery(s Settings, width int) scenery {
	return scenery{
		topStone:    NewMarker(s.TopStone, lineCell),
		bottomStone: NewMarker(s.BottomStone, lineCell),
		grain:       NewMarker(s.Grain, grainCell),
		topLine:     make([]LineCell, 0, width+1),
		bottomLine:  make([]LineCell, 0, width+1),
		ground:      make([]bool, 0, width+1),
	}
}

func (sc *scenery) seed(rng Rand) {
	sc.topStone.Seed(rng)
	sc.bottomStone.Seed(rng)
	sc.grain.Seed(rng)
}

// generate appends one column to every buffer: top line, bottom line, ground.
func (sc *scenery) generate(rng Rand) {
	sc.topLine = append(sc.topLine, sc.topStone.Next(rng))
	sc.bottomLine = append(sc.bottomLine, sc.bottomStone.Next(rng))
	sc.ground = append(sc.ground, sc.grain.Next(rng))
}

// trim drops the oldest column of every buffer.
func (sc *scenery) trim() {
	sc.topLine = dropHead(sc.topLine)
	sc.bottomLine = dropHead(sc.bottomLine)
	sc.ground = dropHead(sc.ground)
}

// dropHead removes s[0] in place so the backing array does not creep forward.
func dropHead[T any](s []T) []T {
	if len(s) == 0 {
		return s
	}
	copy(s, s[1:])
	return s[:len(s)-1]
}
