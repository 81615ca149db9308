// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin and describes their
// distribution.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/juliej2026-source/openclaw-sub003/cluster"
	"github.com/juliej2026-source/openclaw-sub003/stats"
)

func main() {
	xs := readInput(os.Stdin)
	d := stats.Describe(xs)
	if !d.Valid {
		fmt.Fprintln(os.Stderr, "no data")
		os.Exit(1)
	}

	fmt.Printf("N %d  mean %.6g  std dev %.6g  variance %.6g\n",
		d.Count, d.Mean, d.StdDev, d.Variance)
	fmt.Printf("skewness %.6g  kurtosis %.6g\n", d.Skewness, d.Kurtosis)
	fmt.Println()

	labels := map[int]string{25: "Q1", 50: "median", 75: "Q3"}
	fmt.Printf("%8s %.6g\n", "min", d.Min)
	for _, p := range []int{1, 5, 25, 50, 75, 95, 99} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, d.Percentiles[p])
	}
	fmt.Printf("%8s %.6g\n", "max", d.Max)
	fmt.Println()

	jb := stats.JarqueBera(xs, 0.05)
	if jb.Valid {
		verdict := "consistent with normality"
		if jb.Significant {
			verdict = "not normal"
		}
		fmt.Printf("Jarque-Bera %.4g  p %.4g  (%s)\n", jb.Statistic, jb.P, verdict)
	}

	out := cluster.DetectAnomalies(xs, cluster.IQR, cluster.AnomalyOptions{})
	if out.Valid && len(out.Anomalies) > 0 {
		fmt.Printf("outliers (IQR fences at %.3g):", out.Threshold)
		for _, a := range out.Anomalies {
			fmt.Printf(" %.6g", a.Value)
		}
		fmt.Println()
	}
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return xs
}
