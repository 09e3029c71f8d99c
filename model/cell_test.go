package model

import "testing"

func TestNewCell(t *testing.T) {
	if c := NewCell(true); !c.IsAlive() || c.GetAge() != 1 {
		t.Fatalf("NewCell(true) = %+v, want alive age 1", c)
	}
	if c := NewCell(false); c.IsAlive() || c.GetAge() != 0 {
		t.Fatalf("NewCell(false) = %+v, want dead age 0", c)
	}
	var zero Cell
	if zero != NewCell(false) {
		t.Fatal("zero Cell must equal a dead cell")
	}
}

func TestCellSetAliveKeepsAge(t *testing.T) {
	c := NewCell(false)
	c.SetAlive()
	if !c.IsAlive() || c.GetAge() != 1 {
		t.Fatalf("SetAlive on dead cell: %+v", c)
	}
	c.SetAge(7)
	c.SetAlive()
	if c.GetAge() != 7 {
		t.Fatalf("SetAlive on live cell changed age to %d", c.GetAge())
	}
}

func TestCellSetAgeIgnoresNegative(t *testing.T) {
	c := NewCell(true)
	c.SetAge(4)
	c.SetAge(-1)
	if c.GetAge() != 4 {
		t.Fatalf("age = %d, want 4", c.GetAge())
	}
	c.SetAge(0)
	if c.GetAge() != 0 {
		t.Fatalf("age = %d, want 0", c.GetAge())
	}
}

func TestCellReset(t *testing.T) {
	c := NewCell(true)
	c.SetAge(9)
	c.Reset()
	if c.IsAlive() || c.GetAge() != 0 {
		t.Fatalf("Reset: %+v", c)
	}
}

func TestCellNext(t *testing.T) {
	old := NewCell(true)
	old.SetAge(3)

	tests := []struct {
		name      string
		cell      Cell
		neighbors int
		alive     bool
		age       int
	}{
		{"survives with 2", old, 2, true, 4},
		{"survives with 3", old, 3, true, 4},
		{"dies alone", old, 0, false, 0},
		{"dies with 1", old, 1, false, 0},
		{"dies with 4", old, 4, false, 0},
		{"dies with 8", old, 8, false, 0},
		{"born with 3", NewCell(false), 3, true, 1},
		{"stays dead with 2", NewCell(false), 2, false, 0},
		{"stays dead with 6", NewCell(false), 6, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.cell.Next(tt.neighbors)
			if next.IsAlive() != tt.alive || next.GetAge() != tt.age {
				t.Fatalf("Next(%d) = %+v, want alive=%v age=%d", tt.neighbors, next, tt.alive, tt.age)
			}
		})
	}
	if old.GetAge() != 3 {
		t.Fatal("Next must not mutate the receiver")
	}
}
