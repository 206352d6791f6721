package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io/ioutil"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func readDocument(path string) (*html.Node, error) {

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page %v failed: %w", path, err)
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page %v failed: %w", path, err)
	}

	return doc, nil
}

func writeDocument(path string, doc *html.Node) error {

	var buffer bytes.Buffer
	if err := html.Render(&buffer, doc); err != nil {
		return fmt.Errorf("rendering page %v failed: %w", path, err)
	}

	return ioutil.WriteFile(path, buffer.Bytes(), 0644)
}

// findDivByClass returns the first div below n carrying class as one of its classes
func findDivByClass(n *html.Node, class string) *html.Node {

	if n.Type == html.ElementNode && n.DataAtom == atom.Div && hasClass(n, class) {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findDivByClass(c, class); found != nil {
			return found
		}
	}

	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func innerHTML(n *html.Node) (string, error) {
	var buffer bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buffer, c); err != nil {
			return "", err
		}
	}
	return buffer.String(), nil
}

// appendFragment renders tmpl and appends the resulting nodes to parent
func appendFragment(parent *html.Node, tmpl *template.Template, data interface{}) error {

	var buffer bytes.Buffer
	if err := tmpl.Execute(&buffer, data); err != nil {
		return fmt.Errorf("executing template %v failed: %w", tmpl.Name(), err)
	}

	nodes, err := html.ParseFragment(&buffer, parent)
	if err != nil {
		return fmt.Errorf("parsing fragment %v failed: %w", tmpl.Name(), err)
	}

	for _, n := range nodes {
		parent.AppendChild(n)
	}

	return nil
}
