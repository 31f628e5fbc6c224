// Package catalog resolves exercises by id or name across the built-in list
// and the user's custom exercises.
package catalog

import (
	"strings"

	"github.com/misterclayt0n/ratlog/internal/models"
)

type Catalog struct {
	exercises []models.Exercise
	byID      map[string]int
	byName    map[string]int
}

// New returns the built-in catalog.
func New() *Catalog {
	return build(builtin)
}

func build(exercises []models.Exercise) *Catalog {
	c := &Catalog{
		exercises: make([]models.Exercise, 0, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
		byName:    make(map[string]int, len(exercises)),
	}
	for _, ex := range exercises {
		c.add(ex)
	}
	return c
}

// add ignores exercises whose id or name is already taken, so built-in
// entries win over custom ones.
func (c *Catalog) add(ex models.Exercise) {
	name := normalize(ex.Name)
	if _, ok := c.byID[ex.ID]; ok {
		return
	}
	if _, ok := c.byName[name]; ok {
		return
	}

	c.byID[ex.ID] = len(c.exercises)
	c.byName[name] = len(c.exercises)
	c.exercises = append(c.exercises, ex)
}

// Merge returns a new catalog holding c's exercises followed by custom.
func (c *Catalog) Merge(custom []models.Exercise) *Catalog {
	all := make([]models.Exercise, 0, len(c.exercises)+len(custom))
	all = append(all, c.exercises...)
	for _, ex := range custom {
		ex.IsCustom = true
		all = append(all, ex)
	}
	return build(all)
}

func (c *Catalog) All() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

func (c *Catalog) ByID(id string) (models.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, false
	}
	return c.exercises[i], true
}

// ByName matches case-insensitively, ignoring surrounding whitespace.
func (c *Catalog) ByName(name string) (models.Exercise, bool) {
	i, ok := c.byName[normalize(name)]
	if !ok {
		return models.Exercise{}, false
	}
	return c.exercises[i], true
}

// Resolve accepts either an id or a name.
func (c *Catalog) Resolve(ref string) (models.Exercise, bool) {
	if ex, ok := c.ByID(ref); ok {
		return ex, true
	}
	return c.ByName(ref)
}

// Search returns exercises whose name, muscle group or equipment contains
// query, optionally restricted to one muscle group. An empty query matches
// everything.
func (c *Catalog) Search(query string, muscle models.MuscleGroup) []models.Exercise {
	q := normalize(query)
	out := []models.Exercise{}
	for _, ex := range c.exercises {
		if muscle != "" && ex.MuscleGroup != muscle {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(ex.Name), q) ||
			strings.Contains(string(ex.MuscleGroup), q) ||
			strings.Contains(string(ex.Equipment), q) {
			out = append(out, ex)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
