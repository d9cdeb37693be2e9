package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidBaseURL indicates a base URL that cannot be parsed.
var ErrInvalidBaseURL = errors.New("invalid base URL")

// rewrittenAttrs lists the URL attributes rewritten per element.
var rewrittenAttrs = map[atom.Atom]string{
	atom.Img:    "src",
	atom.A:      "href",
	atom.Source: "src",
	atom.Video:  "src",
	atom.Audio:  "src",
}

// RewriteRelativeURLs resolves relative img, a and media URLs against base.
// A base with a scheme ("https://cdn.example.com/docs/") is resolved as a
// URL reference. A base without one is a local directory: paths become
// file:// URLs and paths escaping the directory are left unchanged.
// An empty base returns the content unchanged.
func RewriteRelativeURLs(content, base string) (string, error) {
	if base == "" {
		return content, nil
	}

	resolve, err := resolverFor(base)
	if err != nil {
		return "", err
	}

	// Parse HTML: full document or fragment
	doc, isFragment, err := parseHTML(content)
	if err != nil {
		return "", err
	}

	// Rewrite paths in the document tree, then render back
	rewriteNode(doc, resolve)
	return renderHTML(doc, isFragment)
}

// resolverFor returns the function mapping a relative reference to its
// rewritten value, and false when it must be kept.
func resolverFor(base string) (func(string) (string, bool), error) {
	if strings.Contains(base, "://") {
		baseURL, err := url.Parse(base)
		if err != nil || baseURL.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
		}
		return func(ref string) (string, bool) {
			refURL, err := url.Parse(ref)
			if err != nil {
				return "", false
			}
			return baseURL.ResolveReference(refURL).String(), true
		}, nil
	}

	// Local directory: make it absolute for consistent path resolution
	dir, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	return func(ref string) (string, bool) {
		absPath := filepath.Join(dir, filepath.FromSlash(ref))
		if !isPathUnderDir(absPath, dir) {
			return "", false // ../ escapes keep the original path
		}
		return pathToFileURL(absPath), true
	}, nil
}

// parseHTML parses a full document or a body fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(content))
	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders doc back. Fragments render their children only so
// no html/body wrapper is added.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder
	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode walks the tree and rewrites the URL attribute of each element
// listed in rewrittenAttrs. srcset is not rewritten.
func rewriteNode(n *html.Node, resolve func(string) (string, bool)) {
	if n.Type == html.ElementNode {
		if attrName, ok := rewrittenAttrs[n.DataAtom]; ok {
			for i, attr := range n.Attr {
				if attr.Key != attrName || !isRelativeReference(attr.Val) {
					continue
				}
				if v, ok := resolve(attr.Val); ok {
					n.Attr[i].Val = v
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, resolve)
	}
}

// isRelativeReference reports whether ref is a relative path: not empty,
// not an anchor, not absolute and without a scheme.
func isRelativeReference(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "/") {
		return false
	}
	if filepath.IsAbs(ref) {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == ""
}

// isPathUnderDir reports whether absPath is dir or below it.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)
	// Trailing separator so /docs does not match /docs-private
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	// Appending a separator to the path also accepts dir itself
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	// filepath.ToSlash handles Windows backslashes
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
