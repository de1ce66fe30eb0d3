package game

// Level is a named progression tier unlocked by lifetime earned points.
type Level struct {
	Name      string
	MinPoints int64
}

// Levels is ordered by ascending MinPoints; index 0 must have threshold 0.
// Customize the progression here.
var Levels = []Level{
	{Name: "🥉 Bronze", MinPoints: 0},
	{Name: "🥈 Silver", MinPoints: 5000},
	{Name: "🥇 Gold", MinPoints: 25000},
	{Name: "🏆 Platinum", MinPoints: 1000000},
}

// LevelFor returns the highest tier whose threshold is covered by the given
// lifetime points. Scans from the top so the first match wins.
func LevelFor(totalEarnedPoints int64) Level {
	for i := len(Levels) - 1; i >= 0; i-- {
		if totalEarnedPoints >= Levels[i].MinPoints {
			return Levels[i]
		}
	}
	return Levels[0]
}
