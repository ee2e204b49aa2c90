package main

import "github.com/attackmap/attackmap/cmd/attackmap"

func main() { attackmap.Execute() }
