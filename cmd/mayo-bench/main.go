// Command mayo-bench sweeps the four parameter sets, timing one keygen/
// sign/verify round per set, and renders the result as an interactive
// go-echarts chart.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mayo/internal/metrics"
	"mayo/mayo"
)

type sweepRow struct {
	set      mayo.Set
	pkBytes  int
	skBytes  int
	sigBytes int
	keygenUS int64
	signUS   int64
	verifyUS int64
	attempts uint64
}

func runOne(set mayo.Set) (sweepRow, error) {
	cfg := mayo.NewConfig(set)
	metrics.Enabled = true
	defer metrics.SnapshotAndReset()

	t0 := time.Now()
	kp, err := mayo.GenerateWithRandReader(cfg)
	keygenUS := time.Since(t0).Microseconds()
	if err != nil {
		return sweepRow{}, fmt.Errorf("%v: generate: %w", set, err)
	}

	msg := []byte("mayo-bench sweep payload")
	t1 := time.Now()
	sig, err := kp.Sign(msg, rand.Reader)
	signUS := time.Since(t1).Microseconds()
	if err != nil {
		return sweepRow{}, fmt.Errorf("%v: sign: %w", set, err)
	}

	t2 := time.Now()
	ok, err := kp.Verify(msg, sig)
	verifyUS := time.Since(t2).Microseconds()
	if err != nil {
		return sweepRow{}, fmt.Errorf("%v: verify: %w", set, err)
	}
	if !ok {
		return sweepRow{}, fmt.Errorf("%v: freshly produced signature failed to verify", set)
	}

	snap := metrics.SnapshotAndReset()
	return sweepRow{
		set:      set,
		pkBytes:  len(kp.PK),
		skBytes:  len(kp.SK),
		sigBytes: len(sig),
		keygenUS: keygenUS,
		signUS:   signUS,
		verifyUS: verifyUS,
		attempts: snap["sign_attempts"],
	}, nil
}

func main() {
	outPath := flag.String("out", "mayo_sweep.html", "output HTML file")
	flag.Parse()

	sets := []mayo.Set{mayo.Mayo1, mayo.Mayo2, mayo.Mayo3, mayo.Mayo5}
	rows := make([]sweepRow, 0, len(sets))
	for _, s := range sets {
		row, err := runOne(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sweep error: %v\n", err)
			os.Exit(1)
		}
		rows = append(rows, row)
		fmt.Printf("%-6v pk=%5dB sig=%4dB keygen=%6dus sign=%7dus verify=%6dus attempts=%d\n",
			row.set, row.pkBytes, row.sigBytes, row.keygenUS, row.signUS, row.verifyUS, row.attempts)
	}

	page := components.NewPage().SetPageTitle("MAYO parameter sweep")

	sizeBar := charts.NewBar()
	sizeBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Public key / signature size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "bytes"}),
	)
	labels := make([]string, len(rows))
	pkData := make([]opts.BarData, len(rows))
	sigData := make([]opts.BarData, len(rows))
	for i, r := range rows {
		labels[i] = r.set.String()
		pkData[i] = opts.BarData{Value: r.pkBytes}
		sigData[i] = opts.BarData{Value: r.sigBytes}
	}
	sizeBar.SetXAxis(labels).
		AddSeries("public key", pkData).
		AddSeries("signature", sigData)

	timeBar := charts.NewBar()
	timeBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Wall-clock time per operation"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds"}),
	)
	keygenData := make([]opts.BarData, len(rows))
	signData := make([]opts.BarData, len(rows))
	verifyData := make([]opts.BarData, len(rows))
	for i, r := range rows {
		keygenData[i] = opts.BarData{Value: r.keygenUS}
		signData[i] = opts.BarData{Value: r.signUS}
		verifyData[i] = opts.BarData{Value: r.verifyUS}
	}
	timeBar.SetXAxis(labels).
		AddSeries("keygen", keygenData).
		AddSeries("sign", signData).
		AddSeries("verify", verifyData)

	page.AddCharts(sizeBar, timeBar)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}
