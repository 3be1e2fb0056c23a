// Package memory provides an in-process implementation of storage.Store.
// Data lives only as long as the process; it backs tests and the
// GIFTSHUFFLER_STORE=memory mode.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/shuffle"
	"github.com/mmynk/giftshuffler/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type counterKey struct {
	groupID    string
	occasionID string
}

// Store keeps everything in maps guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	persons     map[string]models.Person
	groups      map[string]models.Group // Members unused; see members
	members     map[string]map[string]struct{}
	occasions   map[string]models.Occasion
	editions    map[string]models.Edition
	counters    map[counterKey]int
	assignments map[string][]models.Assignment
	organizers  map[string]models.Organizer
}

// New creates an empty store.
func New() *Store {
	return &Store{
		persons:     map[string]models.Person{},
		groups:      map[string]models.Group{},
		members:     map[string]map[string]struct{}{},
		occasions:   map[string]models.Occasion{},
		editions:    map[string]models.Edition{},
		counters:    map[counterKey]int{},
		assignments: map[string][]models.Assignment{},
		organizers:  map[string]models.Organizer{},
	}
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
}

func stamp(id *string, createdAt *int64) {
	if *id == "" {
		*id = uuid.New().String()
	}
	if *createdAt == 0 {
		*createdAt = time.Now().Unix()
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) CreatePerson(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&person.ID, &person.CreatedAt)
	s.persons[person.ID] = *person
	return nil
}

func (s *Store) GetPerson(_ context.Context, personID string) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.persons[personID]
	if !ok {
		return nil, notFound("person", personID)
	}
	return &p, nil
}

func (s *Store) ListPersons(context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	persons := make([]*models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		persons = append(persons, &p)
	}
	slices.SortFunc(persons, func(a, b *models.Person) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return persons, nil
}

func (s *Store) DeletePerson(_ context.Context, personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.persons[personID]; !ok {
		return notFound("person", personID)
	}
	delete(s.persons, personID)
	for _, set := range s.members {
		delete(set, personID)
	}
	return nil
}

func (s *Store) CreateGroup(_ context.Context, group *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range group.Members {
		if _, ok := s.persons[m.ID]; !ok {
			return notFound("person", m.ID)
		}
	}

	stamp(&group.ID, &group.CreatedAt)
	set := make(map[string]struct{}, len(group.Members))
	for _, m := range group.Members {
		set[m.ID] = struct{}{}
	}
	s.groups[group.ID] = models.Group{ID: group.ID, Name: group.Name, CreatedAt: group.CreatedAt}
	s.members[group.ID] = set
	return nil
}

func (s *Store) GetGroup(_ context.Context, groupID string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[groupID]
	if !ok {
		return nil, notFound("group", groupID)
	}
	g.Members = s.membersLocked(groupID)
	return &g, nil
}

func (s *Store) ListGroups(context.Context) ([]*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]*models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		g.Members = s.membersLocked(g.ID)
		groups = append(groups, &g)
	}
	slices.SortFunc(groups, func(a, b *models.Group) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return groups, nil
}

func (s *Store) DeleteGroup(_ context.Context, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[groupID]; !ok {
		return notFound("group", groupID)
	}
	delete(s.groups, groupID)
	delete(s.members, groupID)
	s.dropEditionsLocked(func(e models.Edition) bool { return e.GroupID == groupID })
	for key := range s.counters {
		if key.groupID == groupID {
			delete(s.counters, key)
		}
	}
	return nil
}

func (s *Store) AddGroupMember(_ context.Context, groupID, personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.members[groupID]
	if !ok {
		return notFound("group", groupID)
	}
	if _, ok := s.persons[personID]; !ok {
		return notFound("person", personID)
	}
	set[personID] = struct{}{}
	return nil
}

func (s *Store) RemoveGroupMember(_ context.Context, groupID, personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.members[groupID]
	if !ok {
		return notFound("group", groupID)
	}
	if _, ok := set[personID]; !ok {
		return notFound("group member", personID)
	}
	delete(set, personID)
	return nil
}

func (s *Store) GetGroupMembers(_ context.Context, groupID string) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.groups[groupID]; !ok {
		return nil, notFound("group", groupID)
	}
	return s.membersLocked(groupID), nil
}

func (s *Store) membersLocked(groupID string) []models.Person {
	members := make([]models.Person, 0, len(s.members[groupID]))
	for id := range s.members[groupID] {
		members = append(members, s.persons[id])
	}
	slices.SortFunc(members, func(a, b models.Person) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return members
}

func (s *Store) CreateOccasion(_ context.Context, occasion *models.Occasion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&occasion.ID, &occasion.CreatedAt)
	s.occasions[occasion.ID] = *occasion
	return nil
}

func (s *Store) GetOccasion(_ context.Context, occasionID string) (*models.Occasion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.occasions[occasionID]
	if !ok {
		return nil, notFound("occasion", occasionID)
	}
	return &o, nil
}

func (s *Store) ListOccasions(context.Context) ([]*models.Occasion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occasions := make([]*models.Occasion, 0, len(s.occasions))
	for _, o := range s.occasions {
		occasions = append(occasions, &o)
	}
	slices.SortFunc(occasions, func(a, b *models.Occasion) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return occasions, nil
}

func (s *Store) DeleteOccasion(_ context.Context, occasionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.occasions[occasionID]; !ok {
		return notFound("occasion", occasionID)
	}
	delete(s.occasions, occasionID)
	s.dropEditionsLocked(func(e models.Edition) bool { return e.OccasionID == occasionID })
	for key := range s.counters {
		if key.occasionID == occasionID {
			delete(s.counters, key)
		}
	}
	return nil
}

func (s *Store) CreateEdition(_ context.Context, edition *models.Edition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[edition.GroupID]
	if !ok {
		return notFound("group", edition.GroupID)
	}
	occasion, ok := s.occasions[edition.OccasionID]
	if !ok {
		return notFound("occasion", edition.OccasionID)
	}

	stamp(&edition.ID, &edition.CreatedAt)
	key := counterKey{groupID: edition.GroupID, occasionID: edition.OccasionID}
	s.counters[key]++
	edition.Number = s.counters[key]
	edition.GroupName = group.Name
	edition.OccasionName = occasion.Name
	edition.IsShuffled = false
	if strings.TrimSpace(edition.Name) == "" {
		edition.Name = models.DefaultEditionName(group.Name, occasion.Name, edition.Number)
	}

	s.editions[edition.ID] = *edition
	return nil
}

func (s *Store) GetEdition(_ context.Context, editionID string) (*models.Edition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.editions[editionID]
	if !ok {
		return nil, notFound("edition", editionID)
	}
	return &e, nil
}

func (s *Store) ListEditions(_ context.Context, filter models.EditionFilter) ([]*models.Edition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var editions []*models.Edition
	for _, e := range s.editions {
		if filter.GroupID != "" && e.GroupID != filter.GroupID {
			continue
		}
		if filter.OccasionID != "" && e.OccasionID != filter.OccasionID {
			continue
		}
		editions = append(editions, &e)
	}
	slices.SortFunc(editions, func(a, b *models.Edition) int {
		return cmp.Or(cmp.Compare(b.CreatedAt, a.CreatedAt), cmp.Compare(b.Number, a.Number))
	})
	return editions, nil
}

func (s *Store) DeleteEdition(_ context.Context, editionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.editions[editionID]; !ok {
		return notFound("edition", editionID)
	}
	delete(s.assignments, editionID)
	delete(s.editions, editionID)
	return nil
}

// dropEditionsLocked deletes matching editions and their assignments.
func (s *Store) dropEditionsLocked(match func(models.Edition) bool) {
	for id, e := range s.editions {
		if match(e) {
			delete(s.assignments, id)
			delete(s.editions, id)
		}
	}
}

func (s *Store) GetForbiddenPairs(_ context.Context, groupID, occasionID string) ([]shuffle.Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := shuffle.NewPairSet()
	var pairs []shuffle.Pair
	for id, e := range s.editions {
		if e.GroupID != groupID || e.OccasionID != occasionID {
			continue
		}
		for _, a := range s.assignments[id] {
			p := shuffle.Pair{Giver: a.GiverID, Recipient: a.RecipientID}
			if !seen.Contains(p) {
				seen.Add(p)
				pairs = append(pairs, p)
			}
		}
	}
	return pairs, nil
}

// CommitAssignments checks and sets the shuffled flag under the write lock,
// so concurrent commits for one edition cannot both succeed.
func (s *Store) CommitAssignments(_ context.Context, editionID string, pairs []shuffle.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.editions[editionID]
	if !ok {
		return notFound("edition", editionID)
	}
	if e.IsShuffled {
		return fmt.Errorf("edition %s: %w", editionID, storage.ErrAlreadyShuffled)
	}

	gives := make(map[string]bool, len(pairs))
	receives := make(map[string]bool, len(pairs))
	createdAt := time.Now().Unix()
	assignments := make([]models.Assignment, 0, len(pairs))
	for _, p := range pairs {
		if gives[p.Giver] || receives[p.Recipient] {
			return fmt.Errorf("failed to insert assignment: duplicate pair %s → %s", p.Giver, p.Recipient)
		}
		gives[p.Giver] = true
		receives[p.Recipient] = true
		assignments = append(assignments, models.Assignment{
			ID:          uuid.New().String(),
			EditionID:   editionID,
			GiverID:     p.Giver,
			RecipientID: p.Recipient,
			CreatedAt:   createdAt,
		})
	}

	e.IsShuffled = true
	s.editions[editionID] = e
	s.assignments[editionID] = assignments
	return nil
}

func (s *Store) ListAssignments(_ context.Context, editionID string) ([]*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.editions[editionID]; !ok {
		return nil, notFound("edition", editionID)
	}

	out := make([]*models.Assignment, 0, len(s.assignments[editionID]))
	for _, a := range s.assignments[editionID] {
		a.GiverName = s.persons[a.GiverID].Name
		a.RecipientName = s.persons[a.RecipientID].Name
		out = append(out, &a)
	}
	slices.SortFunc(out, func(a, b *models.Assignment) int {
		return cmp.Or(cmp.Compare(a.GiverName, b.GiverName), cmp.Compare(a.GiverID, b.GiverID))
	})
	return out, nil
}

func (s *Store) CreateOrganizer(_ context.Context, organizer *models.Organizer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.organizers {
		if o.Email == organizer.Email {
			return fmt.Errorf("organizer %s: %w", organizer.Email, storage.ErrAlreadyExists)
		}
	}
	s.organizers[organizer.ID] = *organizer
	return nil
}

func (s *Store) GetOrganizerByEmail(_ context.Context, email string) (*models.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, o := range s.organizers {
		if o.Email == email {
			return &o, nil
		}
	}
	return nil, notFound("organizer", email)
}

func (s *Store) GetOrganizerByID(_ context.Context, id string) (*models.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.organizers[id]
	if !ok {
		return nil, notFound("organizer", id)
	}
	return &o, nil
}
