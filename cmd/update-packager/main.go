package main

import "github.com/oshokin/update-registry/cmd/update-packager/cmd"

func main() {
	cmd.Execute()
}
