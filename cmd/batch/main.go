package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"geo-distance-service/internal/adapters/csvio"
	"geo-distance-service/internal/config"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/services"
)

// main is the CSV batch entry point. It reads paired coordinates from
// the input file, normalizes and enriches every row and writes the
// result file. Row-level failures are counted and skipped unless
// -strict is set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		inputPath  = flag.String("input", "", "input CSV file path")
		outputPath = flag.String("output", "", "output CSV file path")
		formatName = flag.String("format", config.Get("COORD_FORMAT", "dd"), "coordinate input format (dd, dms or ddm)")
		strict     = flag.Bool("strict", false, "stop on the first invalid row")
		tolerance  = flag.Float64("tolerance", defaultTolerance(), "proximity tolerance in decimal degrees")
	)
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "both -input and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	format, err := services.ParseFormat(*formatName)
	if err != nil {
		log.Fatal(err)
	}
	if *tolerance < 0 {
		log.Fatal("tolerance must be non-negative")
	}

	in, err := os.Open(*inputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := csvio.NewReader(in)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(*outputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	sink, err := csvio.NewWriter(out)
	if err != nil {
		log.Fatal(err)
	}

	res, err := services.ProcessBatch(context.Background(), src, sink, services.BatchOptions{
		Format:    format,
		Strict:    *strict,
		Tolerance: geomath.Tolerance{Deg: *tolerance},
	})
	if err != nil {
		log.Fatal(err)
	}

	if res.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "%d ignored line(s)\n", res.Skipped)
	}
	log.Printf("done rows=%d skipped=%d format=%s", res.Written, res.Skipped, format)
}

// defaultTolerance reads GEO_TOLERANCE_DEG, falling back to the default
// proximity tolerance (~11 cm at the equator).
func defaultTolerance() float64 {
	raw := config.Get("GEO_TOLERANCE_DEG", "")
	if raw == "" {
		return geomath.DefaultTolerance.Deg
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Printf("invalid GEO_TOLERANCE_DEG=%q, using default", raw)
		return geomath.DefaultTolerance.Deg
	}
	return v
}
