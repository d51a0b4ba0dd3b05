// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package platelookup implements the external plate data source used
// by the enrichment use case. The source publishes an HTML page
// holding a table of license plates with their brand, model, and
// color; Lookup fetches the page and scans the table for the plate
// row.
package platelookup

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/opencarpark/parkapi/pkg/core/usecase/enrichuc"
)

// Client implements the enrichuc.PlateSource interface over an HTTP
// endpoint.
type Client struct {
	url string
	hc  *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

// Lookup fetches the source page and returns the data of the row
// matching the licensePlate, or nil when no row matches. Plates are
// compared case-insensitively after trimming.
func (c *Client) Lookup(ctx context.Context, licensePlate string) (*enrichuc.PlateData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching plate data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	row := findPlateRow(doc, licensePlate)
	if row == nil {
		return nil, nil
	}
	return &enrichuc.PlateData{
		Brand: cell(row, 1),
		Model: cell(row, 2),
		Color: cell(row, 3),
	}, nil
}

// findPlateRow walks the document for a tr element whose first cell
// holds the plate.
func findPlateRow(n *html.Node, plate string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "tr" {
		if strings.EqualFold(cell(n, 0), strings.TrimSpace(plate)) {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if row := findPlateRow(c, plate); row != nil {
			return row
		}
	}
	return nil
}

// cell returns the trimmed text of the i-th td/th child of the row,
// or an empty string when the row is shorter.
func cell(row *html.Node, i int) string {
	idx := 0
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		if idx == i {
			return strings.TrimSpace(text(c))
		}
		idx++
	}
	return ""
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
