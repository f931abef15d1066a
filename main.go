package main

import "github.com/rchdlps/gerenciador-projetos-sub002/cmd"

func main() {
	cmd.Execute()
}
