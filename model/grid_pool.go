package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids discarded on reload or resize
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the given dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

// newGrid takes a grid from pool when one is configured
func newGrid(pool *GridPool, rows, cols int) *Grid {
	if pool != nil {
		return pool.Get(rows, cols)
	}
	return NewGrid(rows, cols)
}
