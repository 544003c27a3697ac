package main

import "github.com/nikogura/legacy-reimburse/cmd"

func main() {
	cmd.Execute()
}
