// Command posekit manages a local gallery of 3D character poses.
package main

import "github.com/atelier3d/posekit/internal/cli"

func main() {
	cli.Execute()
}
