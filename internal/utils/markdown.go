package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// PlainText reduz um título possivelmente formatado em markdown a texto simples de uma linha
func PlainText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			if _, ok := node.(*ast.Paragraph); ok {
				buf.WriteByte(' ')
			}
			return ast.GoToNext
		}

		switch n := node.(type) {
		case *ast.HTMLBlock, *ast.HTMLSpan:
			return ast.SkipChildren
		case *ast.Text:
			buf.Write(n.Literal)
		case *ast.Code:
			buf.Write(n.Literal)
		case *ast.Softbreak, *ast.Hardbreak:
			buf.WriteByte(' ')
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}
