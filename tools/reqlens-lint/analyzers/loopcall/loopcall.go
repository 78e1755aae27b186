// Package loopcall detects provider round trips inside loops.
package loopcall

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects provider round trips inside loops. The service makes
// exactly one provider call per request; a call in a loop is a fan-out bug.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects provider round trips inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// providerMethods are method names that trigger an outbound provider call.
var providerMethods = map[string]bool{
	// ChatCompleter interface
	"Complete": true,
	// AnalysisService entry points
	"Analyze":            true,
	"ExtractConstraints": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			methodName := sel.Sel.Name
			if providerMethods[methodName] {
				pass.Reportf(call.Pos(),
					"provider fan-out: %s called inside loop - one provider call per request",
					methodName)
			}

			return true
		})
	})

	return nil, nil
}
