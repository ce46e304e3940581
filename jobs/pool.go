package jobs

import (
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/transform"
)

// Pool is a free list of instant jobs. Jobs taken from a Pool go back to
// it when their Queue finishes them; callers must not keep references to
// a pooled job after posting it.
type Pool struct {
	moves []*MoveViewJob
	zooms []*ZoomJob
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		moves: make([]*MoveViewJob, 0, 2),
		zooms: make([]*ZoomJob, 0, 2),
	}
}

// MoveView returns a MoveViewJob from the pool.
func (p *Pool) MoveView(v View, tr *transform.Transformer, x, y float64) *MoveViewJob {
	var j *MoveViewJob
	if n := len(p.moves); n > 0 {
		j = p.moves[n-1]
		p.moves = p.moves[:n-1]
	} else {
		j = &MoveViewJob{pooled: true}
	}
	j.view, j.trans, j.X, j.Y = v, tr, x, y
	return j
}

// Zoom returns a ZoomJob from the pool.
func (p *Pool) Zoom(v View, tr *transform.Transformer, dep axis.Dependency, scaleX, scaleY, x, y float64) *ZoomJob {
	var j *ZoomJob
	if n := len(p.zooms); n > 0 {
		j = p.zooms[n-1]
		p.zooms = p.zooms[:n-1]
	} else {
		j = &ZoomJob{pooled: true}
	}
	j.view, j.trans, j.Axis = v, tr, dep
	j.ScaleX, j.ScaleY, j.X, j.Y = scaleX, scaleY, x, y
	return j
}

// Put returns a pooled job. Jobs not taken from a pool are ignored.
func (p *Pool) Put(j Job) {
	switch j := j.(type) {
	case *MoveViewJob:
		if j.pooled {
			j.reset()
			p.moves = append(p.moves, j)
		}
	case *ZoomJob:
		if j.pooled {
			j.reset()
			p.zooms = append(p.zooms, j)
		}
	}
}

// Warmup pre-allocates count jobs of each kind.
func (p *Pool) Warmup(count int) {
	for range count {
		p.moves = append(p.moves, &MoveViewJob{pooled: true})
		p.zooms = append(p.zooms, &ZoomJob{pooled: true})
	}
}

// Free returns the number of idle jobs held.
func (p *Pool) Free() int { return len(p.moves) + len(p.zooms) }
