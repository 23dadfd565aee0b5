package cmdutil

import (
	"fmt"
	"strings"

	"github.com/barun-bash/uic/internal/ast"
)

// CheckSummary describes a program that passed every check.
func CheckSummary(prog *ast.Program, defFile string) string {
	var parts []string
	if def := prog.Definition; def != nil {
		if n := len(def.Components); n > 0 {
			parts = append(parts, fmt.Sprintf("%d component%s", n, Plural(n)))
		}
		if n := len(def.Variables); n > 0 {
			parts = append(parts, fmt.Sprintf("%d variable%s", n, Plural(n)))
		}
	}
	if n := len(prog.Views); n > 0 {
		parts = append(parts, fmt.Sprintf("%d view%s", n, Plural(n)))
	}

	msg := fmt.Sprintf("%s is valid", defFile)
	if len(parts) > 0 {
		msg += ": " + strings.Join(parts, ", ")
	}
	return msg
}

// MissingDefaultView returns the file name of the default view when no
// view has that name, or "" when it exists. Generation fails on such a
// program even though every check passes.
func MissingDefaultView(prog *ast.Program) string {
	for _, v := range prog.Views {
		if v.Name == prog.DefaultView {
			return ""
		}
	}
	return prog.DefaultView + viewExt
}

// Plural returns "s" for n != 1, empty string for n == 1.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
