// Command voronoi-sweep reads the text site format documented in §6 of the
// specification this module implements and prints basic statistics about the
// resulting diagram. It exists only as a thin, out-of-scope example program (named
// as such in §1's Non-goals); the library itself is the deliverable.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/go-geom/voronoi"
	"github.com/go-geom/voronoi/numeric"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoi-sweep",
		Usage:     "Builds a Voronoi diagram from a point/segment site file and prints its statistics",
		UsageText: "voronoi-sweep --input sites.txt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a site file in the <n_points>/x y/<n_segments>/x0 y0 x1 y1 text format; defaults to stdin",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:  "vertices",
				Usage: "Also print every Voronoi vertex, with near-integral coordinates snapped for readability",
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	r := io.Reader(os.Stdin)
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("voronoi-sweep: %w", err)
		}
		defer f.Close()
		r = f
	}

	points, segments, err := readSites(r)
	if err != nil {
		return fmt.Errorf("voronoi-sweep: %w", err)
	}

	diagram, err := voronoi.NewBuilder().
		WithVertices(points...).
		WithSegments(segments...).
		Build()
	if err != nil {
		return fmt.Errorf("voronoi-sweep: %w", err)
	}

	fmt.Printf("cells: %d\n", diagram.NumCells())
	fmt.Printf("vertices: %d\n", diagram.NumVertices())
	fmt.Printf("edges: %d\n", diagram.NumEdges())
	if cmd.Bool("vertices") {
		for i, v := range diagram.Vertices() {
			x := numeric.SnapToEpsilon(v.X(), 1e-9)
			y := numeric.SnapToEpsilon(v.Y(), 1e-9)
			fmt.Printf("vertex %d: (%g, %g)\n", i, x, y)
		}
	}
	return nil
}

// readSites parses the text input format named in §6: a point count, that many "x y"
// lines, a segment count, then that many "x0 y0 x1 y1" lines.
func readSites(r io.Reader) ([]voronoi.Point, []voronoi.Segment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nPoints, err := readInt(sc)
	if err != nil {
		return nil, nil, fmt.Errorf("reading point count: %w", err)
	}
	points := make([]voronoi.Point, nPoints)
	for i := 0; i < nPoints; i++ {
		x, y, err := readTwoInts(sc)
		if err != nil {
			return nil, nil, fmt.Errorf("reading point %d: %w", i, err)
		}
		points[i] = voronoi.NewPoint(x, y)
	}

	nSegments, err := readInt(sc)
	if err != nil {
		return nil, nil, fmt.Errorf("reading segment count: %w", err)
	}
	segments := make([]voronoi.Segment, nSegments)
	for i := 0; i < nSegments; i++ {
		x0, y0, x1, y1, err := readFourInts(sc)
		if err != nil {
			return nil, nil, fmt.Errorf("reading segment %d: %w", i, err)
		}
		segments[i] = voronoi.NewSegment(voronoi.NewPoint(x0, y0), voronoi.NewPoint(x1, y1))
	}
	return points, segments, nil
}

func readInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}
	var n int
	if _, err := fmt.Sscan(sc.Text(), &n); err != nil {
		return 0, err
	}
	return n, nil
}

func readTwoInts(sc *bufio.Scanner) (a, b int64, err error) {
	if !sc.Scan() {
		return 0, 0, io.ErrUnexpectedEOF
	}
	_, err = fmt.Sscan(sc.Text(), &a, &b)
	return a, b, err
}

func readFourInts(sc *bufio.Scanner) (a, b, c, d int64, err error) {
	if !sc.Scan() {
		return 0, 0, 0, 0, io.ErrUnexpectedEOF
	}
	_, err = fmt.Sscan(sc.Text(), &a, &b, &c, &d)
	return a, b, c, d, err
}
