package main

import "codekeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
