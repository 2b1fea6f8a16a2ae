/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package rules fetches the Pinochle rules reference from pagat.com and
// renders it as plain text for the bot and CLI rules commands.
package rules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/pinochle-scorebot/internal"
)

const (
	baseRulesURL    = "https://www.pagat.com/marriage/pin.html"
	variantRulesURL = "https://www.pagat.com/marriage/pin2hand.html"

	// rules pages change rarely; cache aggressively
	cacheTTL = 24 * time.Hour
)

// Section is one titled chunk of the rules reference.
type Section struct {
	Title      string
	Paragraphs []string
}

// Doc is the assembled rules reference.
type Doc struct {
	Sections []Section
}

// HttpGetter is satisfied by *http.Client; tests substitute their own.
type HttpGetter interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetch retrieves the base and two-handed-variant rules pages concurrently
// and assembles their sections into a single Doc.
func Fetch(ctx context.Context) (Doc, error) {
	return fetchWith(ctx, internal.NewCachedHttpClient(ctx, cacheTTL))
}

func fetchWith(ctx context.Context, client HttpGetter) (Doc, error) {
	var baseDoc, variantDoc Doc

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baseDoc, err = fetchOnePage(ctx, client, baseRulesURL)
		return err
	})
	g.Go(func() error {
		var err error
		variantDoc, err = fetchOnePage(ctx, client, variantRulesURL)
		return err
	})
	if err := g.Wait(); err != nil {
		return Doc{}, err
	}

	return Doc{Sections: append(baseDoc.Sections, variantDoc.Sections...)}, nil
}

func fetchOnePage(ctx context.Context, client HttpGetter, url string) (Doc, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return Doc{}, fmt.Errorf("unable to fetch rules page (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return Doc{}, fmt.Errorf("unable to fetch rules page (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Doc{}, fmt.Errorf("unable to fetch rules page (http): %v",
			resp.StatusCode)
	}

	return parseRulesPage(resp.Body)
}

// parseRulesPage extracts h2-titled sections and the paragraph text under
// each from a pagat.com rules page.
func parseRulesPage(body io.Reader) (Doc, error) {
	gqDoc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return Doc{}, fmt.Errorf("unable to parse rules page: %w", err)
	}

	var doc Doc
	gqDoc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		section := Section{Title: strings.TrimSpace(s.Text())}
		if section.Title == "" {
			return
		}

		// collect paragraph siblings up to the next section header
		for sel := s.Next(); sel.Length() > 0 && !sel.Is("h2"); sel = sel.Next() {
			if !sel.Is("p") {
				continue
			}
			text := strings.Join(strings.Fields(sel.Text()), " ")
			if text != "" {
				section.Paragraphs = append(section.Paragraphs, text)
			}
		}

		if len(section.Paragraphs) > 0 {
			doc.Sections = append(doc.Sections, section)
		}
	})

	if len(doc.Sections) == 0 {
		return Doc{}, fmt.Errorf("rules page contained no sections; layout may have changed")
	}

	return doc, nil
}

// FindSection returns the first section whose title contains query,
// case-insensitively.
func (d Doc) FindSection(query string) (Section, bool) {
	query = strings.ToLower(query)
	for _, sec := range d.Sections {
		if strings.Contains(strings.ToLower(sec.Title), query) {
			return sec, true
		}
	}
	return Section{}, false
}

// BuildRulesOutput renders a named section as text, or the list of section
// titles when query is empty or unmatched.
func BuildRulesOutput(d Doc, query string) string {
	var sb strings.Builder

	if query != "" {
		if sec, ok := d.FindSection(query); ok {
			sb.WriteString(sec.Title + "\n\n")
			for _, p := range sec.Paragraphs {
				sb.WriteString(p + "\n\n")
			}
			return sb.String()
		}
		sb.WriteString(fmt.Sprintf("No rules section matches %q. Available sections:\n\n",
			query))
	} else {
		sb.WriteString("Available rules sections:\n\n")
	}

	for _, sec := range d.Sections {
		sb.WriteString("- " + sec.Title + "\n")
	}
	sb.WriteString("\nRun the rules command with a section name for details.\n")

	return sb.String()
}
