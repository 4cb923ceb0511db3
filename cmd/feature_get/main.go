package main

import "github.com/edwinhayes/rosgo-vimbax/internal/cli"

func main() {
	cli.Main(cli.NewFeatureGetCommand)
}
