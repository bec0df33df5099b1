package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that enum fields only use defined constants, not string literals",
	Run:  run,
}

// enumTypes are the closed string sets in internal/model.
var enumTypes = map[string]bool{
	"Role":               true,
	"IssueStatus":        true,
	"AdminRequestStatus": true,
	"NotificationType":   true,
	"LeaderboardAction":  true,
	"Priority":           true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				for i, lhs := range node.Lhs {
					if i >= len(node.Rhs) {
						continue
					}
					sel, ok := lhs.(*ast.SelectorExpr)
					if ok && isEnumTyped(pass, sel) && isStringLiteral(node.Rhs[i]) {
						pass.Reportf(node.Pos(),
							"enum field %s assigned string literal; use defined constant instead",
							sel.Sel.Name)
					}
				}

			// model.User{Role: "admin"}
			case *ast.KeyValueExpr:
				key, ok := node.Key.(*ast.Ident)
				if ok && isStructField(pass, key) && isEnumTyped(pass, key) && isStringLiteral(node.Value) {
					pass.Reportf(node.Pos(),
						"enum field %s assigned string literal; use defined constant instead",
						key.Name)
				}
			}
			return true
		})
	}
	return nil, nil
}

func isEnumTyped(pass *analysis.Pass, expr ast.Expr) bool {
	if t := pass.TypesInfo.TypeOf(expr); t != nil {
		if named, ok := t.(*types.Named); ok {
			return enumTypes[named.Obj().Name()]
		}
	}
	return false
}

// isStructField excludes map literal keys, which may be enum constants.
func isStructField(pass *analysis.Pass, ident *ast.Ident) bool {
	v, ok := pass.TypesInfo.Uses[ident].(*types.Var)
	return ok && v.IsField()
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
