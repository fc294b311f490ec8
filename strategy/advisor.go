package strategy

import "seabattle/game"

// PowerAdvisor decides whether to spend the once-per-match power on the
// coming shot, and which one.
type PowerAdvisor interface {
	Advise(mode Mode, session *Session, fleet *game.Fleet, unknownFraction float64) game.Power
}

// ThresholdAdvisor spends the power on fixed information-value rules,
// first match wins. The destroy rule fires only on the exact turn a hunt
// has its first hit; a hunt already past that point keeps the power for
// the next fresh hit.
type ThresholdAdvisor struct{}

func NewThresholdAdvisor() *ThresholdAdvisor {
	return &ThresholdAdvisor{}
}

func (a *ThresholdAdvisor) Advise(mode Mode, session *Session, fleet *game.Fleet, unknownFraction float64) game.Power {
	if mode == ModeSearching && !fleet.Empty() && fleet.Max() <= SmallShipMax && unknownFraction > RevealSmallestThreshold {
		return game.PowerRevealSmallest
	}
	if mode == ModeSearching && unknownFraction > RevealAreaThreshold {
		return game.PowerRevealArea
	}
	if mode == ModeTargeting && session.HitCount() == 1 && fleet.Min() >= DestroyMinSize {
		return game.PowerDestroyShip
	}
	return game.PowerNone
}
