// Package floatsafe implements an analyzer that reports calls to binary
// float formatters and parsers outside files whose name ends in double.go.
// The wire format of exact values is assembled digit-by-digit; a stray
// strconv call is how binary-float imprecision sneaks back in.
package floatsafe

import (
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "floatsafe",
	Doc:  "reports binary float formatter and parser calls outside double-only files",
	Run:  run,
}

var restricted = map[string]bool{
	"FormatFloat": true,
	"AppendFloat": true,
	"ParseFloat":  true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		filename := filepath.Base(pass.Fset.Position(file.Pos()).Filename)
		if strings.HasSuffix(filename, "double.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			fn, ok := pass.TypesInfo.ObjectOf(sel.Sel).(*types.Func)
			if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "strconv" {
				return true
			}
			if restricted[fn.Name()] {
				pass.Reportf(call.Pos(), "call to strconv.%s outside a double-only file", fn.Name())
			}
			return true
		})
	}
	return nil, nil
}
