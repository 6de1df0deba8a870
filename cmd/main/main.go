package main

import "github.com/supchaser/video_analysis/internal/cli"

func main() {
	cli.Execute()
}
