package skill

import "testing"

func TestAggregateScore_IgnoresUnrated(t *testing.T) {
	v := Empty()
	v.Defense = 4
	v.Attack = 2
	got := AggregateScore(v)
	if got != 3.0 {
		t.Fatalf("expected mean of rated dimensions 3.0, got %v", got)
	}
}

func TestAggregateScore_AllUnratedIsZero(t *testing.T) {
	if got := AggregateScore(Empty()); got != 0 {
		t.Fatalf("expected 0 for empty vector, got %v", got)
	}
}

func TestAggregateScore_Bounds(t *testing.T) {
	vectors := []Vector{
		{Defense: 5, Speed: 5, Creativity: 5, Attack: 5, Goalkeeping: 5, Sprint: 5},
		{Defense: 0.5},
		{Sprint: 5},
		{Defense: 1, Speed: 2, Creativity: 3, Attack: 4, Goalkeeping: 5, Sprint: 1},
	}
	for _, v := range vectors {
		got := AggregateScore(v)
		if got < 0 || got > 5 {
			t.Fatalf("aggregate score %v out of [0,5] for %+v", got, v)
		}
		if got == 0 && !v.IsZero() {
			t.Fatalf("aggregate score is 0 but vector %+v has rated dimensions", v)
		}
	}
}

func TestVector_Valid(t *testing.T) {
	v := Vector{Defense: 5.1}
	if v.Valid() {
		t.Fatalf("expected out-of-range score to be invalid")
	}
	v = Vector{Attack: -1}
	if v.Valid() {
		t.Fatalf("expected negative score to be invalid")
	}
	if !Empty().Valid() {
		t.Fatalf("expected empty vector to be valid")
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(3.1666666); got != 3.2 {
		t.Fatalf("expected 3.2, got %v", got)
	}
	if got := Round1(3.85); got != 3.9 {
		t.Fatalf("expected 3.9, got %v", got)
	}
}

func TestSkillsTable_SixDimensions(t *testing.T) {
	if len(Skills) != 6 {
		t.Fatalf("expected exactly 6 skill definitions, got %d", len(Skills))
	}
	v := Empty()
	for i, def := range Skills {
		v.Set(def.ID, float64(i+1)/2)
		if v.Get(def.ID) != float64(i+1)/2 {
			t.Fatalf("Get/Set mismatch for %s", def.ID)
		}
	}
}
