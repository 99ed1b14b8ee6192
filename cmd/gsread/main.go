package main

import "github.com/dbsmedya/gsread/cmd/gsread/cmd"

func main() {
	cmd.Execute()
}
