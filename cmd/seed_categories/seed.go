package main

import (
	"fmt"
	"strings"

	"feedback-builder/internal/domain"

	"gopkg.in/yaml.v3"
)

// SeedCategory is one entry of the seed file.
type SeedCategory struct {
	Name string `yaml:"name"`
}

func parseSeedFile(data []byte) ([]SeedCategory, error) {
	var seeds []SeedCategory
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	for i, s := range seeds {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("seed entry %d has no name", i)
		}
	}
	return seeds, nil
}

// newCategories returns the seeds whose names are not in existing, without duplicates.
// Names compare case-insensitively after trimming.
func newCategories(existing []domain.Category, seeds []SeedCategory) []domain.Category {
	seen := make(map[string]struct{}, len(existing)+len(seeds))
	for _, c := range existing {
		seen[normalizeName(c.Name)] = struct{}{}
	}

	var out []domain.Category
	for _, s := range seeds {
		key := normalizeName(s.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, domain.Category{Name: strings.TrimSpace(s.Name)})
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
