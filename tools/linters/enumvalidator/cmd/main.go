package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"kra.app/feedback/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
