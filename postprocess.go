package courier

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jaytaylor/html2text"
	"github.com/vanng822/go-premailer/premailer"
)

// inlineCSS applies every reachable stylesheet to the matching elements'
// style attributes: the rendered style role, any <style> blocks already in
// the document, and relative <link rel="stylesheet"> references resolved
// under the configured base path. Tables are eligible like any other
// element, and !important declarations survive when configured to.
func inlineCSS(htmlBody, css string, res WebResources) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var linkErr error
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, sel *goquery.Selection) {
		if linkErr != nil {
			return
		}
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		// Only filesystem references under the base path are pulled in;
		// absolute and protocol-relative URLs stay untouched for the
		// client to fetch.
		if strings.HasPrefix(href, "//") {
			return
		}
		if ref, err := url.Parse(href); err != nil || ref.IsAbs() {
			return
		}
		raw, err := os.ReadFile(filepath.Join(res.RelativeTo, filepath.FromSlash(href)))
		if err != nil {
			linkErr = fmt.Errorf("fetch stylesheet %s: %w", href, err)
			return
		}
		sel.ReplaceWithHtml("<style>" + string(raw) + "</style>")
	})
	if linkErr != nil {
		return "", linkErr
	}

	if css != "" {
		doc.Find("head").AppendHtml("<style>" + css + "</style>")
	}

	merged, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serialize html: %w", err)
	}

	opts := premailer.NewOptions()
	opts.KeepBangImportant = res.KeepImportant
	opts.CssToAttributes = res.CSSToAttributes
	opts.RemoveClasses = res.RemoveClasses
	inliner, err := premailer.NewPremailerFromString(merged, opts)
	if err != nil {
		return "", fmt.Errorf("prepare inliner: %w", err)
	}
	out, err := inliner.Transform()
	if err != nil {
		return "", fmt.Errorf("inline styles: %w", err)
	}
	return out, nil
}

// htmlToText derives a plain-text body from HTML by stripping markup.
// Headings come out upper-cased and image elements contribute nothing,
// neither alt nor src text.
func htmlToText(htmlBody string) (string, error) {
	text, err := html2text.FromString(htmlBody)
	if err != nil {
		return "", fmt.Errorf("derive text: %w", err)
	}
	return text, nil
}
