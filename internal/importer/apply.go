package importer

import (
	"context"
	"fmt"

	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/repository"
)

// Result counts the records written by Apply.
type Result struct {
	Groups    int
	Teachers  int
	Rooms     int
	Subjects  int
	Lessons   int
	NoticeSet bool
}

// Apply writes a validated seed into the store. Records without an id get a
// fresh one from ids; existing records are left alone and lessons are
// appended. Call ValidateSeedSchema first.
func Apply(ctx context.Context, store *repository.Store, ids *domain.IDSource, schema *SeedSchema) (*Result, error) {
	res := &Result{}
	assign := func(id int64) int64 {
		if id == 0 {
			return ids.Next()
		}
		return id
	}

	for _, g := range schema.Groups {
		g.ID = assign(g.ID)
		if err := store.Groups.Create(ctx, g); err != nil {
			return res, fmt.Errorf("seeding group %q: %w", g.Name, err)
		}
		res.Groups++
	}
	for _, t := range schema.Teachers {
		t.ID = assign(t.ID)
		if err := store.Teachers.Create(ctx, t); err != nil {
			return res, fmt.Errorf("seeding teacher %q: %w", t.FullName, err)
		}
		res.Teachers++
	}
	for _, r := range schema.Rooms {
		r.ID = assign(r.ID)
		if err := store.Rooms.Create(ctx, r); err != nil {
			return res, fmt.Errorf("seeding room %q: %w", r.Number, err)
		}
		res.Rooms++
	}
	for _, s := range schema.Subjects {
		s.ID = assign(s.ID)
		if err := store.Subjects.Create(ctx, s); err != nil {
			return res, fmt.Errorf("seeding subject %q: %w", s.Name, err)
		}
		res.Subjects++
	}
	for i, l := range schema.Schedule {
		l.ID = assign(l.ID)
		if err := store.Lessons.Create(ctx, l); err != nil {
			return res, fmt.Errorf("seeding schedule[%d]: %w", i, err)
		}
		res.Lessons++
	}
	if schema.Notice != nil {
		if err := store.Notice.Set(ctx, *schema.Notice); err != nil {
			return res, fmt.Errorf("seeding notice: %w", err)
		}
		res.NoticeSet = true
	}
	return res, nil
}
