/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package character

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/categories.yaml
var defaultCategories []byte

// Category is one appearance filter. A category with children is a group:
// selecting it selects every child, and its own tag never appears on a
// record.
type Category struct {
	Tag      string     `yaml:"tag" json:"tag"`
	Label    string     `yaml:"label" json:"label"`
	Children []Category `yaml:"children,omitempty" json:"children,omitempty"`
}

// Categories is the static filter hierarchy shown to players.
type Categories struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

// ParseCategories decodes a YAML category catalog.
func ParseCategories(data []byte) (*Categories, error) {
	var c Categories
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}

	return &c, nil
}

// LoadCategories reads a catalog from path, or the embedded one when path
// is empty.
func LoadCategories(path string) (*Categories, error) {
	if path == "" {
		return ParseCategories(defaultCategories)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	return ParseCategories(data)
}

func (c *Categories) validate() error {
	if len(c.Categories) == 0 {
		return errors.New("no categories defined")
	}

	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.Tag == "" {
			return errors.New("category with empty tag")
		}
		if seen[cat.Tag] {
			return fmt.Errorf("duplicate tag %q", cat.Tag)
		}
		seen[cat.Tag] = true

		for _, child := range cat.Children {
			if child.Tag == "" {
				return fmt.Errorf("category %q has a child with empty tag", cat.Tag)
			}
			if len(child.Children) > 0 {
				return fmt.Errorf("category %q nests deeper than one level", child.Tag)
			}
			if seen[child.Tag] {
				return fmt.Errorf("duplicate tag %q", child.Tag)
			}
			seen[child.Tag] = true
		}
	}

	return nil
}

// Children returns the child tags of parent, or nil if parent is not a group.
func (c *Categories) Children(parent string) []string {
	if c == nil {
		return nil
	}

	for _, cat := range c.Categories {
		if cat.Tag != parent {
			continue
		}
		out := make([]string, 0, len(cat.Children))
		for _, child := range cat.Children {
			out = append(out, child.Tag)
		}
		return out
	}

	return nil
}

// Tags returns every selectable leaf tag, in catalog order.
func (c *Categories) Tags() []string {
	if c == nil {
		return nil
	}

	var out []string
	for _, cat := range c.Categories {
		if len(cat.Children) == 0 {
			out = append(out, cat.Tag)
			continue
		}
		for _, child := range cat.Children {
			out = append(out, child.Tag)
		}
	}

	return out
}

// Expand returns the active tag set for a selection: every tag marked true,
// plus every child of a group marked true.
func (c *Categories) Expand(selected map[string]bool) map[string]struct{} {
	active := make(map[string]struct{}, len(selected))

	for tag, on := range selected {
		if !on {
			continue
		}
		active[tag] = struct{}{}
		for _, child := range c.Children(tag) {
			active[child] = struct{}{}
		}
	}

	return active
}

// ParentChecked reports whether a group should show as checked: true when
// the group itself or any of its children is selected.
func (c *Categories) ParentChecked(selected map[string]bool, parent string) bool {
	if selected[parent] {
		return true
	}

	for _, child := range c.Children(parent) {
		if selected[child] {
			return true
		}
	}

	return false
}
