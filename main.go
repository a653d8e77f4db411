package main

import "pividsetup/internal/setup"

func main() {
	setup.Main()
}
