package main

import "github.com/saadjs/fitday/cmd/fitday"

func main() {
	fitday.Execute()
}
