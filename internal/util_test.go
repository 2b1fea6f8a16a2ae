/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrZero(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantZero bool
		wantErr  bool
	}{
		{name: "empty", in: "", wantZero: true},
		{name: "null literal", in: "null", wantZero: true},
		{name: "iso date", in: "2026-03-15"},
		{name: "us date", in: "3/15/2026"},
		{name: "garbage", in: "not a date", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseDateOrZero(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseDateOrZero(%q) succeeded; want error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateOrZero(%q): %v", c.in, err)
			}
			if got.IsZero() != c.wantZero {
				t.Errorf("ParseDateOrZero(%q).IsZero() = %v; want %v", c.in,
					got.IsZero(), c.wantZero)
			}
			if !c.wantZero {
				if got.Year() != 2026 || got.Month() != time.March ||
					got.Day() != 15 {
					t.Errorf("ParseDateOrZero(%q) = %v; want 2026-03-15",
						c.in, got)
				}
			}
		})
	}
}

func TestParseIntList(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{name: "simple", in: "40,10,20", want: []int{40, 10, 20}},
		{name: "spaces", in: " 120 , 90 ", want: []int{120, 90}},
		{name: "negative", in: "-25,0", want: []int{-25, 0}},
		{name: "single", in: "7", want: []int{7}},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "12,abc", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseIntList(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseIntList(%q) succeeded; want error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIntList(%q): %v", c.in, err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("ParseIntList(%q) = %v; want %v", c.in, got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("ParseIntList(%q)[%v] = %v; want %v", c.in, i,
						got[i], c.want[i])
				}
			}
		})
	}
}

func TestFormatDateOrDash(t *testing.T) {
	if got := FormatDateOrDash(time.Time{}); got != "-" {
		t.Errorf("zero time = %q; want -", got)
	}
	d := time.Date(2026, time.January, 5, 13, 0, 0, 0, time.UTC)
	if got := FormatDateOrDash(d); got != "2026-01-05" {
		t.Errorf("got %q; want 2026-01-05", got)
	}
}
