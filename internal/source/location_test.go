package source

import "testing"

func TestLocationString(t *testing.T) {
	if got := NewLocation("main.dt", 3, 7).String(); got != "main.dt:3:7" {
		t.Errorf("got %q", got)
	}
	if got := NewLocation("", 1, 2).String(); got != "1:2" {
		t.Errorf("got %q", got)
	}
}

func TestLocationLess(t *testing.T) {
	a := NewLocation("a.dt", 1, 9)
	b := NewLocation("a.dt", 2, 1)
	c := NewLocation("a.dt", 2, 4)
	if !a.Less(b) || !b.Less(c) || c.Less(a) {
		t.Fatalf("line-then-column ordering broken")
	}
	if a.Less(a) {
		t.Fatalf("Less must be strict")
	}
}

func TestLocationEquality(t *testing.T) {
	if NewLocation("f", 1, 1) != (Location{Filename: "f", Line: 1, Column: 1}) {
		t.Fatal("locations with equal fields must compare equal")
	}
	if (Location{}).IsValid() {
		t.Fatal("zero Location is not a valid position")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 1, End: 5}
	if got := a.Cover(b); got != (Span{File: 1, Start: 1, End: 6}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must keep receiver, got %v", got)
	}
	if !(Span{Start: 3, End: 3}).Empty() || a.Len() != 2 {
		t.Errorf("Empty/Len broken")
	}
}
