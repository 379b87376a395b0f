package main

import "github.com/oshokin/update-registry/cmd/update-client/cmd"

func main() {
	cmd.Execute()
}
