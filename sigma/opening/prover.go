package opening

import (
	"bdlop-commitments/commitment"
	"bdlop-commitments/entropy"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sampler"
)

// Prover holds the state shared across proof runs: the entropy source,
// the parameters, the ring, and the public commitment key.
type Prover struct {
	Src    *entropy.Source
	Params *params.Params
	Ring   *rq.Ring
	Key    commitment.Key
}

// NewProver builds a Prover sharing the given (immutable, cloneable)
// commitment key.
func NewProver(src *entropy.Source, p *params.Params, r *rq.Ring, key commitment.Key) *Prover {
	return &Prover{Src: src, Params: p, Ring: r, Key: key}
}

// sampleY draws a fresh k x 1 matrix of Normal(0, sigma) ring elements.
func sampleY(src *entropy.Source, p *params.Params, r *rq.Ring) rq.Mat {
	sigma := float64(p.Sigma())
	return r.NewMatWith(p.K, 1, func(i, j int) rq.Elt {
		return sampler.Normal(src, r, 0, sigma)
	})
}

// Commit commits to x, masks with fresh Gaussian randomness y, and
// computes t = A1*y.
func (pr *Prover) Commit(x []rq.Elt) (ResponseContext, Commitment, error) {
	opening, c, err := commitment.Commit(pr.Src, pr.Params, pr.Ring, pr.Key, x)
	if err != nil {
		return ResponseContext{}, Commitment{}, err
	}
	y := sampleY(pr.Src, pr.Params, pr.Ring)
	t := pr.Key.A1.Dot(y).OneDMatToVec()
	return ResponseContext{Opening: opening, Y: y}, Commitment{C: c, T: t}, nil
}

// CreateResponse computes z = y + r*d.
func (pr *Prover) CreateResponse(ctx ResponseContext, d rq.Elt) Response {
	z := ctx.Y.Add(ctx.Opening.R.ComponentwiseMul(d))
	return Response{Z: z}
}
