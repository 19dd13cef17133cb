package sensitivity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"wellecon/internal/economics"
	"wellecon/internal/model"
)

// Cell is one point of the NPV surface.
type Cell struct {
	XValue float64
	YValue float64
	NPV    float64
}

// Request describes a two-axis sweep over a portfolio.
type Request struct {
	Groups    []model.WellGroup
	Wells     []model.Well
	XVariable Variable
	XSteps    []float64
	YVariable Variable
	YSteps    []float64
}

func (r Request) Validate() error {
	if !r.XVariable.Valid() {
		return fmt.Errorf("x axis: unknown sensitivity variable %q", r.XVariable)
	}
	if !r.YVariable.Valid() {
		return fmt.Errorf("y axis: unknown sensitivity variable %q", r.YVariable)
	}
	return nil
}

// Generator evaluates sensitivity grids. Cells are independent; with
// workers > 1 they run in parallel.
type Generator struct {
	engine  *economics.Engine
	workers int
}

func New(engine *economics.Engine, workers int) *Generator {
	if engine == nil {
		engine = economics.New()
	}
	if workers < 1 {
		workers = 1
	}
	return &Generator{engine: engine, workers: workers}
}

// Generate returns matrix[y][x]: rows follow YSteps, columns XSteps.
func (g *Generator) Generate(req Request) ([][]Cell, error) {
	return g.GenerateContext(context.Background(), req)
}

// GenerateContext is Generate with cancellation checked between cells.
func (g *Generator) GenerateContext(ctx context.Context, req Request) ([][]Cell, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	members := make([][]model.Well, len(req.Groups))
	for i, grp := range req.Groups {
		members[i] = grp.WellIDs.Select(req.Wells)
	}

	matrix := make([][]Cell, len(req.YSteps))
	for yi := range matrix {
		matrix[yi] = make([]Cell, len(req.XSteps))
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for yi, yVal := range req.YSteps {
		yi, yVal := yi, yVal
		for xi, xVal := range req.XSteps {
			xi, xVal := xi, xVal
			if err := egCtx.Err(); err != nil {
				_ = eg.Wait()
				return nil, err
			}
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				matrix[yi][xi] = Cell{
					XValue: xVal,
					YValue: yVal,
					NPV:    g.cellNPV(req, members, xVal, yVal),
				}
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matrix, nil
}

// cellNPV applies Y then X to each group's baseline, so X wins if both
// axes sweep the same variable.
func (g *Generator) cellNPV(req Request, members [][]model.Well, xVal, yVal float64) float64 {
	total := 0.0
	for i, grp := range req.Groups {
		p := baseline(grp).
			apply(req.YVariable, yVal).
			apply(req.XVariable, xVal)

		res := g.engine.Calculate(economics.Input{
			Wells:     members[i],
			TypeCurve: grp.TypeCurve,
			Capex:     grp.Capex,
			Pricing:   p.pricing,
			Scalars:   &p.scalars,
			Schedule:  &p.schedule,
		})
		total += res.Metrics.NPV10
	}
	return total
}

// Generate runs a sequential sweep with the baseline engine.
func Generate(groups []model.WellGroup, wells []model.Well, xVar Variable, xSteps []float64, yVar Variable, ySteps []float64) ([][]Cell, error) {
	return New(nil, 1).Generate(Request{
		Groups:    groups,
		Wells:     wells,
		XVariable: xVar,
		XSteps:    xSteps,
		YVariable: yVar,
		YSteps:    ySteps,
	})
}
