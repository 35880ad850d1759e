// package catalog loads the static problem catalog and derives views over it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"leetdash/internal/models"
	"leetdash/internal/shared"
)

// Catalog is the read-once, immutable problem list.
//
// Problems keep the order of the source file; that order is the deterministic
// tie-breaker for every sort.
type Catalog struct {
	problems []models.Problem
}

// Load reads the JSON catalog file at path. The file holds an ordered JSON
// array of problem records. The catalog never refreshes after load.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes a JSON problem array and validates the unique-id invariant.
func Parse(data []byte) (*Catalog, error) {
	var problems []models.Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(problems))
	for _, p := range problems {
		if _, dup := seen[p.QuestionID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %q", shared.ErrInvalidInput, p.QuestionID)
		}
		seen[p.QuestionID] = struct{}{}
	}

	return &Catalog{problems: problems}, nil
}

// Problems returns the catalog in source order. Callers must not mutate the
// returned slice.
func (c *Catalog) Problems() []models.Problem {
	return c.problems
}

// Len returns the number of problems in the catalog.
func (c *Catalog) Len() int {
	return len(c.problems)
}

// SlugIndex builds a lookup from each problem's URL slug to its question id,
// used by the reconciler to resolve remote submissions.
func (c *Catalog) SlugIndex() map[string]string {
	index := make(map[string]string, len(c.problems))
	for _, p := range c.problems {
		index[p.TitleSlug] = p.QuestionID
	}
	return index
}

// AvailableTags returns the sorted set of unique topic tags across the catalog.
func (c *Catalog) AvailableTags() []string {
	tagSet := make(map[string]struct{})
	for _, p := range c.problems {
		for _, tag := range p.Tags() {
			tagSet[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
