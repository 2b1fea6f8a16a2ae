/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

const testPage = `<html><body>
<h1>Pinochle</h1>
<p>Preamble text outside any section.</p>
<h2>Players and Cards</h2>
<p>Pinochle is played with a 48 card pack.</p>
<p>Two copies each of A 10 K Q J 9 in four suits.</p>
<h2>Bidding</h2>
<p>The bid commits the bidding side to a point total.</p>
<h2>Empty Section</h2>
<h2>Scoring</h2>
<p>Counters are worth 250 points in total including the last trick.</p>
</body></html>`

func TestParseRulesPage(t *testing.T) {
	doc, err := parseRulesPage(strings.NewReader(testPage))
	if err != nil {
		t.Fatalf("parseRulesPage: %v", err)
	}

	// Empty Section has no paragraphs and is dropped
	wantTitles := []string{"Players and Cards", "Bidding", "Scoring"}
	if len(doc.Sections) != len(wantTitles) {
		t.Fatalf("sections = %v; want %v", len(doc.Sections), len(wantTitles))
	}
	for i, title := range wantTitles {
		if doc.Sections[i].Title != title {
			t.Errorf("section %v = %q; want %q", i, doc.Sections[i].Title,
				title)
		}
	}
	if got := len(doc.Sections[0].Paragraphs); got != 2 {
		t.Errorf("Players and Cards paragraphs = %v; want 2", got)
	}

	if _, err := parseRulesPage(strings.NewReader("<html><body></body></html>")); err == nil {
		t.Errorf("sectionless page was accepted")
	}
}

func TestFindSection(t *testing.T) {
	doc, err := parseRulesPage(strings.NewReader(testPage))
	if err != nil {
		t.Fatalf("parseRulesPage: %v", err)
	}

	sec, ok := doc.FindSection("bidding")
	if !ok || sec.Title != "Bidding" {
		t.Errorf("FindSection(bidding) = %+v, %v", sec, ok)
	}
	if _, ok := doc.FindSection("no such topic"); ok {
		t.Errorf("FindSection matched a missing topic")
	}
}

func TestBuildRulesOutput(t *testing.T) {
	doc, err := parseRulesPage(strings.NewReader(testPage))
	if err != nil {
		t.Fatalf("parseRulesPage: %v", err)
	}

	out := BuildRulesOutput(doc, "")
	for _, want := range []string{"Players and Cards", "Bidding", "Scoring"} {
		if !strings.Contains(out, "- "+want) {
			t.Errorf("section list missing %q:\n%v", want, out)
		}
	}

	out = BuildRulesOutput(doc, "scoring")
	if !strings.Contains(out, "250 points") {
		t.Errorf("section body missing:\n%v", out)
	}

	out = BuildRulesOutput(doc, "bogus")
	if !strings.Contains(out, `No rules section matches "bogus"`) {
		t.Errorf("unmatched query output:\n%v", out)
	}
}

// stubGetter serves canned pages keyed by URL.
type stubGetter struct {
	pages map[string]string
}

func (s *stubGetter) Do(req *http.Request) (*http.Response, error) {
	page, ok := s.pages[req.URL.String()]
	if !ok {
		return nil, fmt.Errorf("unexpected url %v", req.URL)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(page)),
	}, nil
}

func TestFetchWith(t *testing.T) {
	getter := &stubGetter{pages: map[string]string{
		baseRulesURL: testPage,
		variantRulesURL: `<html><body><h2>Two-Handed Play</h2>
<p>Deal twelve cards each.</p></body></html>`,
	}}

	doc, err := fetchWith(context.Background(), getter)
	if err != nil {
		t.Fatalf("fetchWith: %v", err)
	}
	// base page sections first, then the variant page's
	if got := len(doc.Sections); got != 4 {
		t.Fatalf("sections = %v; want 4", got)
	}
	if doc.Sections[3].Title != "Two-Handed Play" {
		t.Errorf("last section = %q; want Two-Handed Play",
			doc.Sections[3].Title)
	}
}
