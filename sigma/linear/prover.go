package linear

import (
	"bdlop-commitments/commitment"
	"bdlop-commitments/entropy"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sampler"
)

// Prover holds the state shared across proof runs.
type Prover struct {
	Src    *entropy.Source
	Params *params.Params
	Ring   *rq.Ring
	Key    commitment.Key
}

// NewProver builds a Prover sharing the given commitment key.
func NewProver(src *entropy.Source, p *params.Params, r *rq.Ring, key commitment.Key) *Prover {
	return &Prover{Src: src, Params: p, Ring: r, Key: key}
}

func sampleY(src *entropy.Source, p *params.Params, r *rq.Ring) rq.Mat {
	sigma := float64(p.Sigma())
	return r.NewMatWith(p.K, 1, func(i, j int) rq.Elt {
		return sampler.Normal(src, r, 0, sigma)
	})
}

// Commit commits to both x and g*x, masks each with fresh Gaussian
// randomness, and computes t = A1*y, t' = A1*y' and u = g*(A2*y) - A2*y'.
func (pr *Prover) Commit(g rq.Elt, x []rq.Elt) (ResponseContext, Commitment, error) {
	gx := make([]rq.Elt, len(x))
	for i, xi := range x {
		gx[i] = pr.Ring.Mul(g, xi)
	}

	openingP, cP, err := commitment.Commit(pr.Src, pr.Params, pr.Ring, pr.Key, gx)
	if err != nil {
		return ResponseContext{}, Commitment{}, err
	}
	openingOrig, c, err := commitment.Commit(pr.Src, pr.Params, pr.Ring, pr.Key, x)
	if err != nil {
		return ResponseContext{}, Commitment{}, err
	}

	y := sampleY(pr.Src, pr.Params, pr.Ring)
	yp := sampleY(pr.Src, pr.Params, pr.Ring)

	t := pr.Key.A1.Dot(y).OneDMatToVec()
	tp := pr.Key.A1.Dot(yp).OneDMatToVec()
	u := pr.Key.A2.Dot(y).ComponentwiseMul(g).Sub(pr.Key.A2.Dot(yp))

	ctx := ResponseContext{Opening: openingOrig, OpeningP: openingP, Y: y, Yp: yp}
	comm := Commitment{C: c, Cp: cP, G: g, T: t, Tp: tp, U: u}
	return ctx, comm, nil
}

// CreateResponse computes z = y + r*d and z' = y' + r'*d.
func (pr *Prover) CreateResponse(ctx ResponseContext, d rq.Elt) Response {
	z := ctx.Y.Add(ctx.Opening.R.ComponentwiseMul(d))
	zp := ctx.Yp.Add(ctx.OpeningP.R.ComponentwiseMul(d))
	return Response{Z: z, Zp: zp}
}
