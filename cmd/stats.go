package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shadercoder/hanamaru-renderer/scene"
	"github.com/urfave/cli"
)

type treeStats struct {
	nodes        int
	leafs        int
	maxDepth     int
	sumLeafDepth int
	minLeafFaces int
	maxLeafFaces int
}

// Build a BVH over a procedurally tessellated sphere and print a table with
// the tree shape.
func TreeStats(ctx *cli.Context) error {
	setupLogging(ctx)

	mesh := genSphereMesh(ctx.Int("stacks"), ctx.Int("slices"))
	logger.Infof("generated sphere mesh: %d vertexes, %d faces", len(mesh.Vertexes), len(mesh.Faces))

	start := time.Now()
	root := scene.BuildBvh(mesh)
	buildTime := time.Since(start)

	stats := treeStats{minLeafFaces: len(mesh.Faces)}
	collectTreeStats(root, 0, &stats)

	avgLeafDepth := 0.0
	if stats.leafs > 0 {
		avgLeafDepth = float64(stats.sumLeafDepth) / float64(stats.leafs)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Faces", fmt.Sprintf("%d", len(mesh.Faces))})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", stats.nodes)})
	table.Append([]string{"Leaves", fmt.Sprintf("%d", stats.leafs)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", stats.maxDepth)})
	table.Append([]string{"Avg leaf depth", fmt.Sprintf("%.2f", avgLeafDepth)})
	table.Append([]string{"Faces per leaf", fmt.Sprintf("%d - %d", stats.minLeafFaces, stats.maxLeafFaces)})
	table.Append([]string{"Build time", buildTime.String()})
	table.Render()

	return nil
}

func collectTreeStats(node *scene.BvhNode, depth int, stats *treeStats) {
	stats.nodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.IsLeaf() {
		stats.leafs++
		stats.sumLeafDepth += depth
		if len(node.FaceIndexes) < stats.minLeafFaces {
			stats.minLeafFaces = len(node.FaceIndexes)
		}
		if len(node.FaceIndexes) > stats.maxLeafFaces {
			stats.maxLeafFaces = len(node.FaceIndexes)
		}
		return
	}

	collectTreeStats(node.Left, depth+1, stats)
	collectTreeStats(node.Right, depth+1, stats)
}
