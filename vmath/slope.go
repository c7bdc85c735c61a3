package vmath

// SlopeRange is the tanToAngle index of a 45-degree slope
const (
	SlopeRange = 2048
	SlopeBits  = 11
)

// SlopeDiv returns num/den scaled to [0, SlopeRange] for a first-octant ratio
// Denominators under 512 raw units cannot give a stable ratio and saturate to SlopeRange
func SlopeDiv(num, den uint32) uint32 {
	if den < 512 {
		return SlopeRange
	}
	ans := (num << 3) / (den >> 8)
	if ans <= SlopeRange {
		return ans
	}
	return SlopeRange
}

// slopeAngle looks up the first-octant angle for |num|/|den|
func slopeAngle(num, den Fixed) Angle {
	return Angle(tanToAngle[SlopeDiv(uint32(num), uint32(den))])
}

// ToAngle returns the binary angle of the vector
//
// The vector is reduced to one of eight octants and a first-octant slope lookup.
// Octants reached through a mirrored slope are offset by -1 from their quadrant base,
// so (0,1) gives ANG90-1 and (-1,0) gives ANG180-1 while (0,-1) gives exactly ANG270.
// Those biases are part of the reproducible numeric contract
// The zero vector yields 0
func (v Vec) ToAngle() Angle {
	x, y := v.X, v.Y
	if x == 0 && y == 0 {
		return 0
	}

	if x >= 0 {
		if y >= 0 {
			if x > y {
				// octant 0
				return slopeAngle(y, x)
			}
			// octant 1
			return ANG90 - 1 - slopeAngle(x, y)
		}
		y = -y
		if x > y {
			// octant 8
			return -slopeAngle(y, x)
		}
		// octant 7
		return ANG270 + slopeAngle(x, y)
	}

	x = -x
	if y >= 0 {
		if x > y {
			// octant 3
			return ANG180 - 1 - slopeAngle(y, x)
		}
		// octant 2
		return ANG90 + slopeAngle(x, y)
	}
	y = -y
	if x > y {
		// octant 4
		return ANG180 + slopeAngle(y, x)
	}
	// octant 5
	return ANG270 - 1 - slopeAngle(x, y)
}

// PointToAngle returns the angle from one point toward another
func PointToAngle(from, to Vec) Angle {
	return to.Sub(from).ToAngle()
}
