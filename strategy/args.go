package strategy

// Heuristic thresholds for the power advisor

// SmallShipMax is the largest ship size that stays hard to find by
// placement counting alone.
const SmallShipMax = 3

// RevealSmallestThreshold is the unknown-board fraction above which
// revealing the smallest ship pays off.
const RevealSmallestThreshold = 0.25

// RevealAreaThreshold is the unknown-board fraction above which an area
// reveal pays off.
const RevealAreaThreshold = 0.5

// DestroyMinSize guards the destroy power: only spend it when every
// remaining ship is at least this long, so the hit one cannot be small.
const DestroyMinSize = 4
