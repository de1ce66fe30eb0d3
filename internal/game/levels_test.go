package game

import "testing"

func TestLevelForThresholds(t *testing.T) {
	cases := []struct {
		points int64
		want   string
	}{
		{0, "🥉 Bronze"},
		{4999, "🥉 Bronze"},
		{5000, "🥈 Silver"},
		{24999, "🥈 Silver"},
		{25000, "🥇 Gold"},
		{999999, "🥇 Gold"},
		{1000000, "🏆 Platinum"},
		{5000000, "🏆 Platinum"},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.points); got.Name != tc.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tc.points, got.Name, tc.want)
		}
	}
}

func TestLevelsAscending(t *testing.T) {
	if Levels[0].MinPoints != 0 {
		t.Fatalf("first tier threshold = %d, want 0", Levels[0].MinPoints)
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i].MinPoints <= Levels[i-1].MinPoints {
			t.Fatalf("tier %d threshold %d not above tier %d threshold %d",
				i, Levels[i].MinPoints, i-1, Levels[i-1].MinPoints)
		}
	}
}
