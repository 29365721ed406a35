package verify

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrSyntax is returned by Check when a rewrite breaks the Java syntax.
var ErrSyntax = errors.New("rewrite introduced syntax errors")

// Java checks rewritten sources with the tree-sitter Java grammar.
type Java struct{}

// SyntaxErrors returns the number of error and missing nodes in the parse
// tree of src.
func (Java) SyntaxErrors(ctx context.Context, src []byte) (int, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return 0, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()
	return countErrors(tree.RootNode()), nil
}

// Check fails when after has more syntax errors than before. Sources that
// were already broken are only rejected if the rewrite made them worse.
func (j Java) Check(ctx context.Context, before, after []byte) error {
	was, err := j.SyntaxErrors(ctx, before)
	if err != nil {
		return err
	}
	now, err := j.SyntaxErrors(ctx, after)
	if err != nil {
		return err
	}
	if now > was {
		return fmt.Errorf("%w (%d before, %d after)", ErrSyntax, was, now)
	}
	return nil
}

func countErrors(n *sitter.Node) int {
	if n == nil || !n.HasError() {
		return 0
	}
	count := 0
	if n.Type() == "ERROR" || n.IsMissing() {
		count++
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		count += countErrors(n.Child(i))
	}
	return count
}
