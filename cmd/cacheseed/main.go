/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mikeb26/pinochle-scorebot/rules"
)

// this program exists just to seed the http cache for the rules reference

func main() {
	doc, err := rules.Fetch(context.Background())
	if err != nil {
		log.Fatalf("cacheseed: failed to fetch rules: %v", err)
	}

	for _, sec := range doc.Sections {
		fmt.Printf("seeded %v\n", sec.Title)
	}
}
