package main

import "github.com/travisdwitt/oakview/cmd"

func main() {
	cmd.Execute()
}
