package gamemath

// Approach moves current toward target by at most step. It reports true once
// target is reached, in which case the returned value is exactly target.
func Approach(current, target, step float32) (float32, bool) {
	if current < target {
		current += step
		if current >= target {
			return target, true
		}
		return current, false
	}
	if current > target {
		current -= step
		if current <= target {
			return target, true
		}
		return current, false
	}
	return target, true
}

// ClampSymmetric clamps a value to [-limit, limit].
func ClampSymmetric(v, limit float32) float32 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
