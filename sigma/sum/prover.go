package sum

import (
	"fmt"

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

// Commit commits to x' = sum(g_i * x_i) and to every x_i, masks each with
// fresh Gaussian randomness, and computes t_i = A1*y_i, t' = A1*y' and
// u = sum(g_i*(A2*y_i)) - A2*y'. gs must be non-empty with |gs| = |xs|;
// violating that is a caller bug, reported as an error to keep the
// failure surface uniform with commitment.Commit.
func (pr *Prover) Commit(gs []rq.Elt, xs [][]rq.Elt) (ResponseContext, Commitment, error) {
	if len(gs) == 0 {
		return ResponseContext{}, Commitment{}, fmt.Errorf("sum: gs must be non-empty")
	}
	if len(gs) != len(xs) {
		return ResponseContext{}, Commitment{}, fmt.Errorf("sum: |gs|=%d != |xs|=%d", len(gs), len(xs))
	}

	l := pr.Params.L
	xPrime := make([]rq.Elt, l)
	for j := range xPrime {
		xPrime[j] = pr.Ring.Zero()
	}
	for i, xi := range xs {
		if len(xi) != l {
			return ResponseContext{}, Commitment{}, fmt.Errorf("sum: xs[%d] has length %d, want %d", i, len(xi), l)
		}
		for j, xij := range xi {
			xPrime[j] = pr.Ring.Add(xPrime[j], pr.Ring.Mul(gs[i], xij))
		}
	}

	openingP, cP, err := commitment.Commit(pr.Src, pr.Params, pr.Ring, pr.Key, xPrime)
	if err != nil {
		return ResponseContext{}, Commitment{}, err
	}

	openings := make([]commitment.Opening, len(xs))
	cs := make([]commitment.Commitment, len(xs))
	for i, xi := range xs {
		openings[i], cs[i], err = commitment.Commit(pr.Src, pr.Params, pr.Ring, pr.Key, xi)
		if err != nil {
			return ResponseContext{}, Commitment{}, err
		}
	}

	ys := make([]rq.Mat, len(xs))
	for i := range ys {
		ys[i] = sampleY(pr.Src, pr.Params, pr.Ring)
	}
	yp := sampleY(pr.Src, pr.Params, pr.Ring)

	ts := make([][]rq.Elt, len(xs))
	for i := range ts {
		ts[i] = pr.Key.A1.Dot(ys[i]).OneDMatToVec()
	}
	tp := pr.Key.A1.Dot(yp).OneDMatToVec()

	uAcc := pr.Ring.NewMatWith(l, 1, func(i, j int) rq.Elt { return pr.Ring.Zero() })
	for i := range ys {
		uAcc = uAcc.Add(pr.Key.A2.Dot(ys[i]).ComponentwiseMul(gs[i]))
	}
	u := uAcc.Sub(pr.Key.A2.Dot(yp))

	ctx := ResponseContext{Openings: openings, OpeningP: openingP, Ys: ys, Yp: yp}
	comm := Commitment{Cp: cP, Cs: cs, Gs: gs, Tp: tp, Ts: ts, U: u}
	return ctx, comm, nil
}

// CreateResponse computes z_i = y_i + r_i*d for each i and z' = y' + r'*d.
func (pr *Prover) CreateResponse(ctx ResponseContext, d rq.Elt) Response {
	zs := make([]rq.Mat, len(ctx.Openings))
	for i, o := range ctx.Openings {
		zs[i] = ctx.Ys[i].Add(o.R.ComponentwiseMul(d))
	}
	zp := ctx.Yp.Add(ctx.OpeningP.R.ComponentwiseMul(d))
	return Response{Zs: zs, Zp: zp}
}
