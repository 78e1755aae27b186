// Package analyzers provides all custom static analyzers for reqlens.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/reqlens/reqlens/tools/reqlens-lint/analyzers/loopcall"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
	}
}
