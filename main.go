package main

import "tomgalvin.uk/hp82240/cmd"

func main() {
	cmd.Execute()
}
