// reqlens-lint is a custom static analyzer for reqlens call patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/reqlens/reqlens/tools/reqlens-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
