package strategy

// CrossedUp 直近でshortsがlongsを下から上に抜けたかどうか
func CrossedUp(shorts, longs []float64) bool {
	size := len(shorts)
	if size < 2 || len(longs) != size {
		return false
	}

	prev := size - 2
	cur := size - 1
	return shorts[prev] <= longs[prev] && shorts[cur] > longs[cur]
}
