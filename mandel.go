package mandel

import (
	"fmt"
	"sort"
	"strings"
)

// Region within the complex plane. X is the real axis, Y the imaginary one.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Center returns the midpoint of the region.
func (r Region) Center() complex128 {
	return complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2)
}

// Viewport converts the bounds into a centre and extents.
func (r Region) Viewport() Viewport {
	return Viewport{
		Center:    r.Center(),
		RealRange: r.Xmax - r.Xmin,
		ImagRange: r.Ymax - r.Ymin,
	}
}

// Landmark regions, addressable by name through LookupRegion.
var (
	// FullSet is the default startup view.
	FullSet = Region{
		Xmin: -2.0,
		Xmax: 1.0,
		Ymin: -1.5,
		Ymax: 1.5,
	}

	// SeahorseValley sits in the cleft between the main cardioid and the
	// period-2 bulb.
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// ElephantValley is on the right of the cardioid.
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// SpiralMinibrot frames a small copy of the set.
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// TripleSpiral shows a three-armed spiral.
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// ValleyOfTheDragon needs a high iteration bound to resolve.
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// MinibrotInMiniSpiral is a minibrot inside a spiral arm.
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var landmarks = map[string]Region{
	"full":       FullSet,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"spiral":     SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}

// LookupRegion returns the landmark registered under name (case insensitive).
func LookupRegion(name string) (Region, error) {
	r, ok := landmarks[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("%w: unknown region %q (known: %s)",
			ErrInvalidConfig, name, strings.Join(RegionNames(), ", "))
	}
	return r, nil
}

// RegionNames lists the landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
