/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/niklasfasching/go-org/org"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const externalLinkPrefix = "🗗 "

var newOrgConfig = org.New

var parseOrg = func(config *org.Configuration, reader io.Reader) *org.Document {
	return config.Parse(reader, "")
}

var newHTMLWriter = org.NewHTMLWriter

var writeOrg = func(doc *org.Document, writer *org.HTMLWriter) (string, error) {
	return doc.Write(writer)
}

var parseHTMLFragment = nethtml.ParseFragment

var renderHTML = nethtml.Render

var (
	reTitleDirective = regexp.MustCompile(`(?i)^\s*#\+TITLE:\s+(.+)$`)
	reHeadline       = regexp.MustCompile(`(?m)^\*+\s+(.+)$`)
)

// ParseOrgToHTML converts org-mode content to HTML. Links leaving the site
// are marked and opened in a new tab.
func ParseOrgToHTML(content string) (string, error) {
	config := newOrgConfig()

	doc := parseOrg(config, strings.NewReader(content))
	if doc.Error != nil {
		return "", fmt.Errorf("failed to parse org-mode content: %w", doc.Error)
	}

	writer := newHTMLWriter()
	writer.HighlightCodeBlock = func(source, lang string, inline bool, params map[string]string) string {
		if inline {
			return `<code class="inline-code">` + html.EscapeString(source) + `</code>`
		}
		return `<pre><code class="code-block">` + html.EscapeString(source) + `</code></pre>`
	}

	renderedHTML, err := writeOrg(doc, writer)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	annotatedHTML, err := addExternalLinkPrefix(renderedHTML)
	if err != nil {
		return "", fmt.Errorf("failed to annotate external links: %w", err)
	}

	return annotatedHTML, nil
}

func addExternalLinkPrefix(htmlBody string) (string, error) {
	if strings.TrimSpace(htmlBody) == "" {
		return htmlBody, nil
	}

	container := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := parseHTMLFragment(strings.NewReader(htmlBody), container)
	if err != nil {
		return "", err
	}

	for _, node := range nodes {
		container.AppendChild(node)
	}

	annotateExternalLinks(container)

	var buffer bytes.Buffer
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if err := renderHTML(&buffer, child); err != nil {
			return "", err
		}
	}

	return buffer.String(), nil
}

func annotateExternalLinks(node *nethtml.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && child.DataAtom == atom.A {
			if isExternalLink(attrValue(child, "href")) {
				if !linkHasPrefix(child) {
					prefixNode := &nethtml.Node{Type: nethtml.TextNode, Data: externalLinkPrefix}
					if child.FirstChild != nil {
						child.InsertBefore(prefixNode, child.FirstChild)
					} else {
						child.AppendChild(prefixNode)
					}
				}

				setAttr(child, "target", "_blank")
				setAttr(child, "rel", "noopener noreferrer")
			}
		}

		annotateExternalLinks(child)
	}
}

func attrValue(node *nethtml.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}

	return ""
}

func setAttr(node *nethtml.Node, key, value string) {
	for i, attr := range node.Attr {
		if attr.Key == key {
			node.Attr[i].Val = value
			return
		}
	}

	node.Attr = append(node.Attr, nethtml.Attribute{Key: key, Val: value})
}

func linkHasPrefix(link *nethtml.Node) bool {
	if link.FirstChild == nil || link.FirstChild.Type != nethtml.TextNode {
		return false
	}

	return strings.HasPrefix(link.FirstChild.Data, strings.TrimSpace(externalLinkPrefix))
}

// isExternalLink reports whether href leaves the site. Site paths are
// root-relative, so anything else with a value is treated as external.
func isExternalLink(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}

	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return false
	}

	return true
}

// ExtractTitle extracts the title from org-mode content.
// Tries #+TITLE: first, then falls back to the first headline.
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if matches := reTitleDirective.FindStringSubmatch(line); len(matches) > 1 {
			return strings.TrimSpace(matches[1])
		}
	}

	if matches := reHeadline.FindStringSubmatch(content); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	return "Untitled"
}
