package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// tocNode mirrors the nested structure of the published TOC JSON.
type tocNode struct {
	Href     string    `json:"href"`
	Contents []tocNode `json:"contents"`
}

// PublishedIndex fetches the provider's table of contents and returns every
// published page identifier, with the list_ prefix and .html suffix
// stripped. The reference pages live three levels deep in the TOC tree.
func (c *Client) PublishedIndex(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.tocURL)
	if err != nil {
		return nil, err
	}

	var toc tocNode
	if err := json.Unmarshal(body, &toc); err != nil {
		return nil, fmt.Errorf("parse toc: %w", err)
	}

	node := toc
	for depth := 0; depth < 2; depth++ {
		if len(node.Contents) == 0 {
			return nil, fmt.Errorf("toc structure changed: no contents at depth %d", depth)
		}
		node = node.Contents[0]
	}

	pages := make([]string, 0, len(node.Contents))
	for _, entry := range node.Contents {
		name := strings.TrimSuffix(strings.TrimPrefix(entry.Href, "list_"), ".html")
		if name != "" {
			pages = append(pages, name)
		}
	}
	return pages, nil
}
