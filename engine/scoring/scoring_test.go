package scoring

import (
	"testing"

	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/types"
)

func testSession() *types.Session {
	return &types.Session{
		Rooms: []types.Room{
			{ID: 1, Name: "Gate", Points: 3},
			{ID: 2, Name: "Tower", Points: 7},
		},
		Items: []types.Item{
			{Name: "Bugle", Points: 2, Location: state.At(1)},
			{Name: "Scroll", Points: 1, Location: state.At(1),
				Action: &types.Action{Verb: types.VerbRead, Kind: types.ActionFortune, Points: 6}},
		},
		GenericPoints: 10,
		Awarded:       []string{},
	}
}

func TestAward_Sources(t *testing.T) {
	tests := []struct {
		key     string
		wantPts int
	}{
		{"Tower", 7},
		{"gate", 3},
		{"bugle", 2},
		{"Scroll", 6},
		{"DefeatedTroll", 10},
	}

	for _, tt := range tests {
		s := testSession()
		if pts := Resolve(s, tt.key); pts != tt.wantPts {
			t.Errorf("Resolve(%q) = %d, want %d", tt.key, pts, tt.wantPts)
		}
		if got := Award(s, tt.key); got != tt.wantPts {
			t.Errorf("Award(%q) = %d, want %d", tt.key, got, tt.wantPts)
		}
		if s.Player.Score != tt.wantPts {
			t.Errorf("score after Award(%q) = %d, want %d", tt.key, s.Player.Score, tt.wantPts)
		}
	}
}

func TestAward_OncePerKey(t *testing.T) {
	s := testSession()

	if got := Award(s, "Tower"); got != 7 {
		t.Fatalf("first award = %d, want 7", got)
	}
	for i := 0; i < 5; i++ {
		if got := Award(s, "TOWER"); got != 0 {
			t.Fatalf("repeat award %d = %d, want 0", i, got)
		}
	}
	if s.Player.Score != 7 {
		t.Errorf("score = %d, want 7", s.Player.Score)
	}
	if !Seen(s, "tower") {
		t.Error("tower should be on the checklist")
	}
	if len(s.Awarded) != 1 {
		t.Errorf("checklist = %v, want one entry", s.Awarded)
	}
}

func TestAward_EmptyKey(t *testing.T) {
	s := testSession()
	if got := Award(s, ""); got != 0 {
		t.Errorf("Award(\"\") = %d", got)
	}
	if len(s.Awarded) != 0 {
		t.Errorf("empty key should not be recorded: %v", s.Awarded)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		health, max int
		want        types.HealthBand
	}{
		{10, 10, types.BandGreat},
		{7, 10, types.BandGreat},
		{6, 10, types.BandOkay},
		{5, 10, types.BandOkay},
		{4, 10, types.BandBad},
		{3, 10, types.BandBad},
		{2, 10, types.BandHorrible},
		{1, 10, types.BandHorrible},
		{0, 10, types.BandDead},
		{-1, 10, types.BandDead},
		{15, 10, types.BandGreat},
		{5, 0, types.BandDead},
	}

	for _, tt := range tests {
		if got := Band(tt.health, tt.max); got != tt.want {
			t.Errorf("Band(%d, %d) = %s, want %s", tt.health, tt.max, got, tt.want)
		}
	}
}
