package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shadercoder/hanamaru-renderer/scene"
	"github.com/shadercoder/hanamaru-renderer/types"
	"github.com/urfave/cli"
)

// Fire the same random rays through the BVH and through a linear scan over
// every face, check the two agree on the nearest hit and print a throughput
// comparison.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	mesh := genSphereMesh(ctx.Int("stacks"), ctx.Int("slices"))
	root := scene.BuildBvh(mesh)

	rayCount := ctx.Int("rays")
	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	rays := make([]scene.Ray, rayCount)
	for i := range rays {
		rays[i] = randomInwardRay(rng)
	}

	logger.Infof("tracing %d rays against %d faces", rayCount, len(mesh.Faces))

	start := time.Now()
	bvhHits := 0
	bvhResults := make([]scene.Intersection, rayCount)
	for i := range rays {
		isect := scene.NewIntersection()
		if root.Intersect(mesh, &rays[i], &isect) {
			bvhHits++
		}
		bvhResults[i] = isect
	}
	bvhTime := time.Since(start)

	start = time.Now()
	bruteHits := 0
	mismatches := 0
	for i := range rays {
		isect := scene.NewIntersection()
		for _, face := range mesh.Faces {
			v0, v1, v2 := mesh.FaceVertexes(face)
			scene.IntersectTriangle(v0, v1, v2, &rays[i], &isect)
		}
		if isect.Hit {
			bruteHits++
		}
		if isect.Hit != bvhResults[i].Hit ||
			(isect.Hit && math.Abs(isect.Distance-bvhResults[i].Distance) > 1e-9) {
			mismatches++
		}
	}
	bruteTime := time.Since(start)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Query", "Hits", "Time", "Rays/sec"})
	table.Append([]string{"BVH", fmt.Sprintf("%d", bvhHits), bvhTime.String(), fmtThroughput(rayCount, bvhTime)})
	table.Append([]string{"Brute force", fmt.Sprintf("%d", bruteHits), bruteTime.String(), fmtThroughput(rayCount, bruteTime)})
	table.SetFooter([]string{"Mismatches", fmt.Sprintf("%d", mismatches), "", ""})
	table.Render()

	if mismatches > 0 {
		return fmt.Errorf("bvh and brute-force queries disagree on %d of %d rays", mismatches, rayCount)
	}
	return nil
}

// Ray from a random point on a radius-3 shell aimed at a random point inside
// the unit cube, so most rays cross the tessellated sphere.
func randomInwardRay(rng *rand.Rand) scene.Ray {
	z := 1.0 - 2.0*rng.Float64()
	r := math.Sqrt(1.0 - z*z)
	phi := 2.0 * math.Pi * rng.Float64()
	origin := types.XYZ(r*math.Cos(phi), r*math.Sin(phi), z).Mul(3.0)

	target := types.XYZ(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
	return scene.Ray{
		Origin:    origin,
		Direction: target.Sub(origin).Normalize(),
	}
}

func fmtThroughput(rays int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", float64(rays)/d.Seconds())
}
