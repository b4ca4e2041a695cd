package patterns

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"lifefb/internal/core"
)

// ErrUnknownScene is returned when a scene name has no registration.
var ErrUnknownScene = errors.New("unknown scene")

// Target is a grid that scenes can wipe and stamp into.
type Target interface {
	core.CellSink
	Clear()
}

// Scene populates a freshly cleared target.
type Scene func(dst Target, rng *core.RNG)

var scenes = map[string]Scene{}

// Register adds a scene under the provided name.
func Register(name string, s Scene) {
	if name == "" || s == nil {
		return
	}
	scenes[name] = s
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scene registered under name.
func Lookup(name string) (Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	return s, nil
}

// Apply clears dst and runs the named scene with an RNG seeded from seed.
func Apply(dst Target, name string, seed int64) error {
	s, err := Lookup(name)
	if err != nil {
		return err
	}
	dst.Clear()
	s(dst, core.NewRNG(seed))
	return nil
}

// Classic stamps the full showcase: oscillators, spaceships, methuselahs, a
// glider gun and two random patches.
func Classic(dst Target, rng *core.RNG) {
	Stamp(dst, 10, 10, Pulsar)
	Stamp(dst, 20, 15, Block)
	Stamp(dst, 15, 20, Glider)
	ScatterDisc(dst, 15, 15, 10, 0.4, rng)
	Stamp(dst, 5, 40, GosperGun)
	Stamp(dst, 35, 10, Pentadecathlon)
	Stamp(dst, 30, 25, Beacon)
	Stamp(dst, 40, 20, Toad)
	Stamp(dst, 50, 15, LWSS)
	Stamp(dst, 45, 30, Acorn)
	Stamp(dst, 25, 35, Diehard)
	Stamp(dst, 60, 10, RPentomino)
	Stamp(dst, 55, 25, Blinker)
	Stamp(dst, 65, 20, Boat)
	Scatter(dst, image.Rect(45, 45, 65, 65), 0.30, rng)
}

// Soup fills the whole grid at a quarter density.
func Soup(dst Target, rng *core.RNG) {
	size := dst.Size()
	Scatter(dst, image.Rect(0, 0, size.W, size.H), 0.25, rng)
}

func init() {
	Register("classic", Classic)
	Register("soup", Soup)
	Register("blank", func(Target, *core.RNG) {})
}
