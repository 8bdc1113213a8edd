package deepzoom

import (
	"context"
	"fmt"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/iteration"
	"github.com/gogpu/deepzoom/internal/vecmath"
	"github.com/gogpu/deepzoom/internal/wide"
)

// Generator produces blocks one at a time.
//
// A Generator keeps the arithmetic engine, iterator and row buffers of the
// format it last used; a request in another format discards and replaces
// them. Steady-state generation of same-format blocks allocates only the
// output arrays.
//
// Thread safety: Generator is NOT safe for concurrent use. Give each
// goroutine its own, as RenderSection does.
type Generator struct {
	opts options

	format fixed.Format
	engine *vecmath.Engine
	iter   *iteration.Iterator
	row    *iteration.RowState
}

// NewGenerator creates a generator. Engines are allocated on first use.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{opts: applyOptions(opts)}
}

// Kind returns the arithmetic implementation of the current format, or
// vecmath.KindGeneric before the first request.
func (g *Generator) Kind() vecmath.Kind {
	if g.engine == nil {
		return vecmath.KindGeneric
	}
	return g.engine.Kind()
}

// Generate computes the block described by r.
//
// Cancellation is checked between rows. A cancelled run returns the rows
// finished so far with Complete unset and a nil error; pass its Snapshot
// (for resumable requests) as Prior to finish it later.
func (g *Generator) Generate(ctx context.Context, r *Request) (*Block, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Prior != nil {
		if err := r.Prior.check(r, &g.opts); err != nil {
			return nil, err
		}
	}

	g.useFormat(r.Format)
	if err := g.configure(r); err != nil {
		return nil, err
	}
	row := g.rowState(r.Width/wide.Lanes, r.Resumable)
	row.SetColumns(r.Real, r.Delta, r.sampledColumns())

	b := newBlock(r.Width, r.Height)
	var snap *Snapshot
	if r.Resumable {
		snap = newSnapshot(r, &g.opts, b)
		b.Snapshot = snap
	}

	for y := range r.Height {
		if err := ctx.Err(); err != nil {
			Logger().Info("generation cancelled",
				"rows", y, "height", r.Height, "err", err)
			break
		}

		if r.Prior != nil && r.Prior.reusable(y, r.Target) {
			r.Prior.copyRow(y, b, snap)
			b.RowsCompleted[y] = true
			b.Stats.RowsReused++
			continue
		}

		row.SetRow(r.Imag.Add(r.Delta.MulInt(y)))
		if r.Prior != nil && r.Prior.RowsCompleted[y] {
			base := y * r.Width
			row.Load(func(col int) iteration.Prior {
				return r.Prior.prior(base + col)
			})
		} else {
			row.Reset()
		}

		g.iter.RunRow(row)
		g.storeRow(y, b, snap)
	}

	b.Complete = true
	for _, done := range b.RowsCompleted {
		b.Complete = b.Complete && done
	}
	b.Stats.addIteration(g.iter.Stats())

	if n := b.Stats.ClampedVelocities; n > 0 {
		Logger().Warn("escape velocities clamped", "count", n)
	}
	Logger().Debug("block generated",
		"width", r.Width, "height", r.Height, "target", r.Target,
		"steps", b.Stats.Steps, "reused", b.Stats.RowsReused, "complete", b.Complete)
	return b, nil
}

// useFormat switches the generator to f, reallocating everything sized by
// the old limb count.
func (g *Generator) useFormat(f fixed.Format) {
	if g.engine != nil && g.format == f {
		return
	}
	g.format = f
	g.engine = vecmath.New(f)
	g.iter = nil
	g.row = nil
	Logger().Debug("engine selected",
		"format", f.String(), "limbs", f.LimbCount(),
		"kind", g.engine.Kind().String(), "cpu", vecmath.Capabilities())
}

func (g *Generator) configure(r *Request) error {
	cfg := iteration.Config{
		Target:             r.Target,
		Threshold:          r.threshold(),
		EscapeVelocity:     g.opts.escapeVelocity,
		SecondaryThreshold: g.opts.secondaryThreshold,
	}
	var err error
	if g.iter == nil {
		g.iter, err = iteration.NewIterator(g.engine, cfg)
	} else {
		err = g.iter.Configure(cfg)
	}
	if err != nil {
		return &RequestError{Field: "Threshold", Reason: fmt.Sprint(err)}
	}
	g.iter.ResetStats()
	return nil
}

func (g *Generator) rowState(batches int, resumable bool) *iteration.RowState {
	if g.row == nil || len(g.row.Batches) != batches || g.row.Resumable() != resumable {
		g.row = iteration.NewRowState(g.engine, batches, resumable)
	}
	return g.row
}

// storeRow copies the results of the row just run into block row y.
func (g *Generator) storeRow(y int, b *Block, snap *Snapshot) {
	row := g.row
	n := g.format.LimbCount()
	base := y * b.Width

	for i, batch := range row.Batches {
		velocities := g.iter.EscapeVelocities(batch)
		for lane := range wide.Lanes {
			p := base + i*wide.Lanes + lane
			b.Counts[p] = batch.ResultCount[lane]
			b.Escaped[p] = batch.HasEscaped[lane]
			b.EscapeVelocities[p] = velocities[lane]
			if snap != nil {
				// Appends in place: the slices have capacity up to the end.
				g.engine.LaneLimbs(snap.Zr[p*n:p*n], batch.Resume.Zr, lane)
				g.engine.LaneLimbs(snap.Zi[p*n:p*n], batch.Resume.Zi, lane)
			}
		}
	}
	b.RowFullyEscaped[y] = row.FullyEscaped()
	b.RowsCompleted[y] = true
}
