package progression

// defaultLevelCosts is the fixed 100-level cost curve. Entry i is the XP
// required to advance from level i+1 to level i+2. The curve is deliberately
// non-uniform: early levels come fast, late levels are a grind.
var defaultLevelCosts = []int64{
	// 1-10
	500, 550, 600, 650, 700, 750, 800, 900, 1000, 1100,
	// 11-20
	1200, 1300, 1400, 1500, 1650, 1800, 1950, 2100, 2250, 2400,
	// 21-30
	2600, 2800, 3000, 3200, 3400, 3600, 3800, 4000, 4250, 4500,
	// 31-40
	4750, 5000, 5250, 5500, 5750, 6000, 6250, 6500, 6750, 7000,
	// 41-50
	7300, 7600, 7900, 8200, 8500, 8800, 9100, 9400, 9700, 10000,
	// 51-60
	10400, 10800, 11200, 11600, 12000, 12400, 12800, 13200, 13600, 14000,
	// 61-70
	14500, 15000, 15500, 16000, 16500, 17000, 17500, 18000, 18500, 19000,
	// 71-80
	19600, 20200, 20800, 21400, 22000, 22600, 23200, 23800, 24400, 25000,
	// 81-90
	25750, 26500, 27250, 28000, 28750, 29500, 30250, 31000, 31750, 32500,
	// 91-100
	33500, 34500, 35500, 36500, 37500, 38500, 39500, 40500, 41750, 43000,
}

// DefaultLevelTable returns a copy of the fixed production level cost table.
func DefaultLevelTable() []int64 {
	table := make([]int64, len(defaultLevelCosts))
	copy(table, defaultLevelCosts)
	return table
}
