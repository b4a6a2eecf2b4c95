package main

import "github.com/joanpaneque/new-project-script/cli"

func main() {
	cli.Execute()
}
