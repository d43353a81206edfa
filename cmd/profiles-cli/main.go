package main

import "github.com/nfrund/househarmony/cmd/profiles-cli/cmd"

func main() {
	cmd.Execute()
}
