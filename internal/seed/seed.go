// Package seed imports persons, groups and occasions from a YAML roster.
//
//	persons: [Alice, Bob, Carol]
//	groups:
//	  - name: Family
//	    members: [Alice, Bob, Carol]
//	occasions:
//	  - name: Christmas
//	    description: Yearly gift exchange
//
// Import is additive. Records are matched by name and reused when they exist;
// group members may name persons from the roster or already in the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage"
)

// Roster is the decoded YAML document.
type Roster struct {
	Persons   []string   `yaml:"persons"`
	Groups    []Group    `yaml:"groups"`
	Occasions []Occasion `yaml:"occasions"`
}

type Group struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

type Occasion struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Summary counts what Apply did.
type Summary struct {
	PersonsCreated   int `json:"persons_created"`
	PersonsReused    int `json:"persons_reused"`
	GroupsCreated    int `json:"groups_created"`
	GroupsReused     int `json:"groups_reused"`
	MembersAdded     int `json:"members_added"`
	OccasionsCreated int `json:"occasions_created"`
	OccasionsReused  int `json:"occasions_reused"`
}

// Load decodes a roster. Unknown keys are rejected.
func Load(r io.Reader) (*Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var roster Roster
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return &roster, nil
		}
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	roster.normalize()
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	return &roster, nil
}

// LoadFile reads and decodes the roster at path.
func LoadFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (r *Roster) normalize() {
	for i := range r.Persons {
		r.Persons[i] = strings.TrimSpace(r.Persons[i])
	}
	for i := range r.Groups {
		g := &r.Groups[i]
		g.Name = strings.TrimSpace(g.Name)
		for j := range g.Members {
			g.Members[j] = strings.TrimSpace(g.Members[j])
		}
	}
	for i := range r.Occasions {
		r.Occasions[i].Name = strings.TrimSpace(r.Occasions[i].Name)
		r.Occasions[i].Description = strings.TrimSpace(r.Occasions[i].Description)
	}
}

// Validate checks names without touching a store.
func (r *Roster) Validate() error {
	var errs []error
	for i, p := range r.Persons {
		if p == "" {
			errs = append(errs, fmt.Errorf("persons[%d]: name is required", i))
		}
	}
	for i, g := range r.Groups {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("groups[%d]: name is required", i))
		}
		seen := make(map[string]bool, len(g.Members))
		for _, m := range g.Members {
			if m == "" {
				errs = append(errs, fmt.Errorf("group %q: member name is required", g.Name))
				continue
			}
			if seen[m] {
				errs = append(errs, fmt.Errorf("group %q: duplicate member %q", g.Name, m))
			}
			seen[m] = true
		}
	}
	for i, o := range r.Occasions {
		if o.Name == "" {
			errs = append(errs, fmt.Errorf("occasions[%d]: name is required", i))
		}
	}
	return errors.Join(errs...)
}

// Apply writes the roster into store. Member references are resolved before
// anything is written, so an unknown member name leaves the store untouched.
func Apply(ctx context.Context, store storage.DirectoryStore, r *Roster) (Summary, error) {
	var sum Summary

	persons, err := store.ListPersons(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to list persons: %w", err)
	}
	personIDs := make(map[string]string, len(persons))
	for _, p := range persons {
		if _, ok := personIDs[p.Name]; !ok {
			personIDs[p.Name] = p.ID
		}
	}

	declared := make(map[string]bool, len(r.Persons))
	for _, name := range r.Persons {
		declared[name] = true
	}
	for _, g := range r.Groups {
		for _, m := range g.Members {
			if _, ok := personIDs[m]; !ok && !declared[m] {
				return sum, fmt.Errorf("group %q: unknown member %q", g.Name, m)
			}
		}
	}

	for _, name := range r.Persons {
		if _, ok := personIDs[name]; ok {
			sum.PersonsReused++
			continue
		}
		p := &models.Person{Name: name}
		if err := store.CreatePerson(ctx, p); err != nil {
			return sum, fmt.Errorf("failed to create person %q: %w", name, err)
		}
		personIDs[name] = p.ID
		sum.PersonsCreated++
	}

	groups, err := store.ListGroups(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to list groups: %w", err)
	}
	existing := make(map[string]*models.Group, len(groups))
	for _, g := range groups {
		if _, ok := existing[g.Name]; !ok {
			existing[g.Name] = g
		}
	}

	for _, spec := range r.Groups {
		g, ok := existing[spec.Name]
		if !ok {
			g = &models.Group{Name: spec.Name}
			for _, m := range spec.Members {
				g.Members = append(g.Members, models.Person{ID: personIDs[m], Name: m})
			}
			if err := store.CreateGroup(ctx, g); err != nil {
				return sum, fmt.Errorf("failed to create group %q: %w", spec.Name, err)
			}
			existing[spec.Name] = g
			sum.GroupsCreated++
			sum.MembersAdded += len(spec.Members)
			continue
		}

		sum.GroupsReused++
		current := make(map[string]bool, len(g.Members))
		for _, m := range g.Members {
			current[m.ID] = true
		}
		for _, m := range spec.Members {
			id := personIDs[m]
			if current[id] {
				continue
			}
			if err := store.AddGroupMember(ctx, g.ID, id); err != nil {
				return sum, fmt.Errorf("failed to add %q to group %q: %w", m, spec.Name, err)
			}
			current[id] = true
			sum.MembersAdded++
		}
	}

	occasions, err := store.ListOccasions(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to list occasions: %w", err)
	}
	occasionNames := make(map[string]bool, len(occasions))
	for _, o := range occasions {
		occasionNames[o.Name] = true
	}
	for _, spec := range r.Occasions {
		if occasionNames[spec.Name] {
			sum.OccasionsReused++
			continue
		}
		o := &models.Occasion{Name: spec.Name, Description: spec.Description}
		if err := store.CreateOccasion(ctx, o); err != nil {
			return sum, fmt.Errorf("failed to create occasion %q: %w", spec.Name, err)
		}
		occasionNames[spec.Name] = true
		sum.OccasionsCreated++
	}

	return sum, nil
}
