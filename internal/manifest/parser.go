package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.yaml.in/yaml/v3"
)

var markdown = goldmark.New(goldmark.WithExtensions(meta.Meta))

// Parse reads frontmatter and headings from SKILL.md content.
func Parse(data []byte) (*Document, error) {
	pctx := parser.NewContext()
	root := markdown.Parser().Parse(text.NewReader(data), parser.WithContext(pctx))

	raw, err := meta.TryGet(pctx)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	doc := &Document{}
	if len(raw) > 0 {
		doc.Meta = raw
		if err := decodeFrontmatter(raw, &doc.Frontmatter); err != nil {
			return nil, err
		}
	}

	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			doc.Headings = append(doc.Headings, Heading{
				Level: h.Level,
				Text:  strings.TrimSpace(inlineText(h, data)),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown: %w", err)
	}

	return doc, nil
}

// ParseFile reads and parses a SKILL.md file.
func ParseFile(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return doc, nil
}

// decodeFrontmatter converts the loosely typed frontmatter map into Frontmatter.
func decodeFrontmatter(raw map[string]interface{}, fm *Frontmatter) error {
	out, err := yaml.Marshal(normalizeYAML(raw))
	if err != nil {
		return fmt.Errorf("re-encoding frontmatter: %w", err)
	}
	if err := yaml.Unmarshal(out, fm); err != nil {
		return fmt.Errorf("decoding frontmatter: %w", err)
	}
	return nil
}

// inlineText concatenates the literal text below n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return b.String()
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
