package main

import (
	"os"

	"github.com/shadercoder/hanamaru-renderer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "hanamaru"
	app.Usage = "inspect and benchmark the ray/geometry query core"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "build a BVH over generated geometry and print tree statistics",
			Description: `
Tessellate a procedural sphere mesh, build the bounding volume hierarchy over
its faces and print a table with node, leaf and depth statistics.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "stacks",
					Value: 32,
					Usage: "sphere tessellation stacks",
				},
				cli.IntFlag{
					Name:  "slices",
					Value: 32,
					Usage: "sphere tessellation slices",
				},
			},
			Action: cmd.TreeStats,
		},
		{
			Name:  "bench",
			Usage: "compare BVH queries against brute-force triangle testing",
			Description: `
Fire random rays at a tessellated sphere mesh through the BVH and through a
linear scan over every face, verify both agree on the nearest hit and print a
throughput table.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "rays",
					Value: 100000,
					Usage: "number of rays to trace",
				},
				cli.IntFlag{
					Name:  "stacks",
					Value: 32,
					Usage: "sphere tessellation stacks",
				},
				cli.IntFlag{
					Name:  "slices",
					Value: 32,
					Usage: "sphere tessellation slices",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for ray generation",
				},
			},
			Action: cmd.Bench,
		},
	}

	app.Run(os.Args)
}
