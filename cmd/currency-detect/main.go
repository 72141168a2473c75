package main

import "github.com/Saxenaa218/currency-conversion-test/internal/cli"

func main() {
	cli.Execute()
}
