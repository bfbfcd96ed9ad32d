package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// isDroppableConsoleCall implements the authoritative drop_console contract
// spec.md §9 settles on: remove the call only when the receiver is a
// statically known reference to the (unshadowed) "console" global and the
// call sits directly in expression-statement position — never inside a
// larger expression, where dropping it would change the expression's value.
func isDroppableConsoleCall(e *ast.Expr) bool {
	call, ok := e.Data.(*ast.ECall)
	if !ok || call.IsNew {
		return false
	}
	dot, ok := call.Target.Data.(*ast.EDot)
	if !ok {
		return false
	}
	id, ok := dot.Target.Data.(*ast.EIdentifier)
	if !ok {
		return false
	}
	return id.Name.String() == "console" && id.ReferenceId == ast.InvalidReferenceId
}
