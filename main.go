package main

import "github.com/devtoolbox/devtoolbox/cmd/devtoolbox"

func main() { devtoolbox.Execute() }
