package model

import "github.com/sheikhrachel/go-gol-sim/rules"

// Cell holds the life state and age of one grid position.
// The zero value is a dead cell of age 0.
type Cell struct {
	alive bool
	age   int
}

// NewCell creates a cell; a live cell starts at age 1
func NewCell(alive bool) Cell {
	if alive {
		return Cell{alive: true, age: 1}
	}
	return Cell{}
}

// IsAlive returns whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

// SetAlive brings a dead cell to life at age 1. A live cell keeps its age.
func (c *Cell) SetAlive() {
	if !c.alive {
		c.alive = true
		c.age = 1
	}
}

// GetAge returns the number of consecutive generations the cell has been alive
func (c Cell) GetAge() int {
	return c.age
}

// SetAge sets the age; negative values are ignored
func (c *Cell) SetAge(age int) {
	if age >= 0 {
		c.age = age
	}
}

// Reset marks the cell dead with age 0
func (c *Cell) Reset() {
	c.alive = false
	c.age = 0
}

// Next returns the replacement cell for the following generation given the
// number of live neighbors around c.
func (c Cell) Next(neighbors int) Cell {
	if !rules.ApplyConwayRules(neighbors, c.alive) {
		return Cell{}
	}
	if !c.alive {
		return NewCell(true)
	}
	next := NewCell(true)
	next.SetAge(c.age + 1)
	return next
}
