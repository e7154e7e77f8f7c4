package model

import "time"

// Rate 取得レート
type Rate struct {
	Pair string
	Rate float64
	Time time.Time
}
