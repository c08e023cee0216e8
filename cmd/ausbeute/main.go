package main

import "github.com/dbsmedya/ausbeute/cmd/ausbeute/cmd"

func main() {
	cmd.Execute()
}
