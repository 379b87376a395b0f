package main

import "github.com/oshokin/update-registry/cmd/update-server/cmd"

func main() {
	cmd.Execute()
}
