package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const zerologLog = "github.com/rs/zerolog/log"

// Analyzer reports panics, process exits outside main and use of the
// standard log package, which bypasses the zerolog logger.
var Analyzer = &analysis.Analyzer{
	Name:     "sharecalls",
	Doc:      "reports panic, exits outside main and standard library logging",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	var inMain *ast.FuncDecl
	insp.Nodes(nodeFilter, func(node ast.Node, push bool) bool {
		switch n := node.(type) {
		case *ast.FuncDecl:
			if n.Recv == nil && n.Name.Name == "main" {
				if push {
					inMain = n
				} else {
					inMain = nil
				}
			}
		case *ast.CallExpr:
			if push {
				checkCall(pass, n, inMain != nil)
			}
		}
		return true
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr, inMain bool) {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" && isBuiltin(pass, fn) {
			pass.Reportf(call.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		pkgPath, ok := importedPath(pass, fn)
		if !ok {
			return
		}

		name := fn.Sel.Name
		switch {
		case pkgPath == "os" && name == "Exit" && !inMain:
			pass.Reportf(call.Pos(), "os.Exit is forbidden outside main function")
		case pkgPath == zerologLog && name == "Fatal" && !inMain:
			pass.Reportf(call.Pos(), "log.Fatal is forbidden outside main function")
		case pkgPath == "log":
			pass.Reportf(call.Pos(), "standard library log.%s is forbidden, use zerolog", name)
		}
	}
}

func isBuiltin(pass *analysis.Pass, ident *ast.Ident) bool {
	if pass.TypesInfo == nil {
		return true
	}
	_, ok := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return ok
}

func importedPath(pass *analysis.Pass, sel *ast.SelectorExpr) (string, bool) {
	ident, ok := sel.X.(*ast.Ident)
	if !ok || pass.TypesInfo == nil {
		return "", false
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return "", false
	}
	return pkgName.Imported().Path(), true
}
