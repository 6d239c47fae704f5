package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"bdlop-commitments/commitment"
	"bdlop-commitments/entropy"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sigma/linear"
	"bdlop-commitments/sigma/opening"
	"bdlop-commitments/sigma/sum"
)

func usage() {
	fmt.Println(`usage: demo <open|linear|sum|all> [options]

Subcommands:
  open    Run a Proof of Opening end to end and report the verdict.
  linear  Run a Proof of Linear Relation end to end and report the verdict.
  sum     Run a Proof of Sum end to end and report the verdict.
  all     Run all three proofs back to back.

Common flags:
  -q      <string>   ring modulus (default: 12289, an NTT-friendly prime)
  -n      <int>      ring degree N, must be a power of two (default: 64)
  -b      <int>      commitment randomness bound (default: 1)
  -arows  <int>      A1 row count "n" of the tuple (default: 1)
  -k      <int>      total column count k (default: 3)
  -l      <int>      message length l (default: 1)
  -kappa  <int>      challenge weight kappa (default: 8)`)
	os.Exit(1)
}

func buildParams(fs *flag.FlagSet, args []string) (*params.Params, *rq.Ring) {
	q := fs.String("q", "12289", "ring modulus")
	n := fs.Int("n", 64, "ring degree N")
	b := fs.Int64("b", 1, "commitment randomness bound")
	arows := fs.Int("arows", 1, "A1 row count (tuple's n)")
	k := fs.Int("k", 3, "total column count k")
	l := fs.Int("l", 1, "message length l")
	kappa := fs.Int("kappa", 8, "challenge weight kappa")
	fs.Parse(args)

	qInt, ok := new(big.Int).SetString(*q, 10)
	if !ok {
		log.Fatalf("demo: bad modulus literal %q", *q)
	}
	p, err := params.New(qInt, *b, *arows, *k, *l, *kappa, *n)
	if err != nil {
		log.Fatalf("demo: params: %v", err)
	}
	r, err := p.Ring()
	if err != nil {
		log.Fatalf("demo: ring: %v", err)
	}
	return p, r
}

func newSource() *entropy.Source {
	src, err := entropy.New()
	if err != nil {
		log.Fatalf("demo: entropy: %v", err)
	}
	return src
}

func runOpen(args []string) bool {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	p, r := buildParams(fs, args)
	src := newSource()
	key := commitment.GenerateKey(src, p, r)

	x := make([]rq.Elt, p.L)
	for i := range x {
		x[i] = r.FromCoeffs([]int64{1, 2, 3, 4})
	}

	prover := opening.NewProver(src, p, r, key)
	verifier := opening.NewVerifier(src, p, r, key)

	ctx, comm, err := prover.Commit(x)
	if err != nil {
		log.Fatalf("demo: open commit: %v", err)
	}
	vctx, ch := verifier.GenerateChallenge(comm)
	resp := prover.CreateResponse(ctx, ch.D)
	ok := verifier.Verify(resp, vctx)
	fmt.Printf("open: verify=%v\n", ok)
	return ok
}

func runLinear(args []string) bool {
	fs := flag.NewFlagSet("linear", flag.ExitOnError)
	p, r := buildParams(fs, args)
	src := newSource()
	key := commitment.GenerateKey(src, p, r)

	x := make([]rq.Elt, p.L)
	for i := range x {
		x[i] = r.FromCoeffs([]int64{1, 2, 3, 4})
	}
	g := r.FromCoeffs([]int64{5, 6})

	prover := linear.NewProver(src, p, r, key)
	verifier := linear.NewVerifier(src, p, r, key)

	ctx, comm, err := prover.Commit(g, x)
	if err != nil {
		log.Fatalf("demo: linear commit: %v", err)
	}
	vctx, ch := verifier.GenerateChallenge(comm)
	resp := prover.CreateResponse(ctx, ch.D)
	ok := verifier.Verify(resp, vctx)
	fmt.Printf("linear: verify=%v\n", ok)
	return ok
}

func runSum(args []string) bool {
	fs := flag.NewFlagSet("sum", flag.ExitOnError)
	p, r := buildParams(fs, args)
	src := newSource()
	key := commitment.GenerateKey(src, p, r)

	xs := make([][]rq.Elt, 2)
	xs[0] = make([]rq.Elt, p.L)
	xs[1] = make([]rq.Elt, p.L)
	for i := range xs[0] {
		xs[0][i] = r.FromCoeffs([]int64{1, 2, 3, 4})
		xs[1][i] = r.FromCoeffs([]int64{5, 6, 7, 8})
	}
	gs := []rq.Elt{r.FromCoeffs([]int64{5, 6}), r.FromCoeffs([]int64{7, 8})}

	prover := sum.NewProver(src, p, r, key)
	verifier := sum.NewVerifier(src, p, r, key)

	ctx, comm, err := prover.Commit(gs, xs)
	if err != nil {
		log.Fatalf("demo: sum commit: %v", err)
	}
	vctx, ch := verifier.GenerateChallenge(comm)
	resp := prover.CreateResponse(ctx, ch.D)
	ok := verifier.Verify(resp, vctx)
	fmt.Printf("sum: verify=%v\n", ok)
	return ok
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "open":
		if !runOpen(os.Args[2:]) {
			os.Exit(1)
		}
	case "linear":
		if !runLinear(os.Args[2:]) {
			os.Exit(1)
		}
	case "sum":
		if !runSum(os.Args[2:]) {
			os.Exit(1)
		}
	case "all":
		okOpen := runOpen(os.Args[2:])
		okLinear := runLinear(os.Args[2:])
		okSum := runSum(os.Args[2:])
		if !okOpen || !okLinear || !okSum {
			os.Exit(1)
		}
	default:
		usage()
	}
}
