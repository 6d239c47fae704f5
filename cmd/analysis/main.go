//go:build analysis

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"bdlop-commitments/commitment"
	"bdlop-commitments/entropy"
	"bdlop-commitments/norms"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sigma/opening"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var variance float64
	for _, v := range x {
		d := v - m
		variance += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(variance / float64(n-1))
	}
	return summaryStats{Count: n, Mean: m, Std: std, Min: cp[0], Median: cp[n/2], Max: cp[n-1]}
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, bound float64) *charts.Bar {
	st := computeStats(values)
	nbins := 40
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.0f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d mean=%.1f std=%.1f max=%.1f bound=%.1f", st.Count, st.Mean, st.Std, st.Max, bound)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// collectResponseNorms runs the opening proof `runs` times and returns
// the norm_2 of every entry of z, alongside the r randomness entries used
// by Commit, so the plotted distributions can be compared against
// CommitBound/VerifyBound.
func collectResponseNorms(p *params.Params, r *rq.Ring, src *entropy.Source, key commitment.Key, runs int) (rNorms, zNorms []float64) {
	for run := 0; run < runs; run++ {
		x := make([]rq.Elt, p.L)
		for i := range x {
			x[i] = r.FromCoeffs([]int64{int64(run + 1), int64(run + 2)})
		}
		prover := opening.NewProver(src, p, r, key)
		verifier := opening.NewVerifier(src, p, r, key)

		ctx, comm, err := prover.Commit(x)
		if err != nil {
			log.Fatalf("analysis: commit: %v", err)
		}
		rows, cols := ctx.Opening.R.Dim()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				rNorms = append(rNorms, float64(norms.Norm2(r, ctx.Opening.R.At(i, j))))
			}
		}

		_, ch := verifier.GenerateChallenge(comm)
		resp := prover.CreateResponse(ctx, ch.D)
		zr, zc := resp.Z.Dim()
		for i := 0; i < zr; i++ {
			for j := 0; j < zc; j++ {
				zNorms = append(zNorms, float64(norms.Norm2(r, resp.Z.At(i, j))))
			}
		}
	}
	return
}

func main() {
	runs := flag.Int("runs", 200, "number of Proof-of-Opening runs to sample")
	qStr := flag.String("q", "3515314177", "ring modulus")
	n := flag.Int("n", 1024, "ring degree N")
	kappa := flag.Int("kappa", 36, "challenge weight kappa")
	outDir := flag.String("out", "analysis_reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	qInt, ok := new(big.Int).SetString(*qStr, 10)
	if !ok {
		log.Fatalf("bad modulus literal %q", *qStr)
	}
	p, err := params.New(qInt, 1, 1, 3, 1, *kappa, *n)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	r, err := p.Ring()
	if err != nil {
		log.Fatalf("ring: %v", err)
	}
	src, err := entropy.New()
	if err != nil {
		log.Fatalf("entropy: %v", err)
	}
	key := commitment.GenerateKey(src, p, r)

	rNorms, zNorms := collectResponseNorms(p, r, src, key, *runs)

	outStats := map[string]summaryStats{
		"commitment_r_norm2": computeStats(rNorms),
		"response_z_norm2":   computeStats(zNorms),
	}
	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("norm_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newHistogramChart("commitment randomness r: norm_2 vs CommitBound", rNorms, float64(p.CommitBound())),
		newHistogramChart("response z: norm_2 vs VerifyBound", zNorms, float64(p.VerifyBound())),
	)

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("norm_histograms_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
