package hack

import "math"

// XPScale sets how quickly XP adds to power. Diminishing returns come from the log.
const XPScale = 1000.0

// Power computes effective strength from a skill stat and total XP:
// skill * (1 + ln(1 + xp/1000)). Non-decreasing in both arguments.
func Power(skill, xp int) float64 {
	return float64(skill) * (1 + math.Log1p(float64(xp)/XPScale))
}
