package main

import "github.com/digestkit/sha1sum/cmd/sha1sum/cmd"

func main() {
	cmd.Execute()
}
