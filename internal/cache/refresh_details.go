package cache

import (
	"context"
	"sync"

	"github.com/jra3/unitrack/internal/domain"
	"golang.org/x/sync/errgroup"
)

// refreshProjectDetails fans out get_project_custom_fields and
// list_project_users across all projects concurrently (spec §4.E.2; the
// ordering requirement is only "custom fields and users after projects, per
// project" — it does not require the projects themselves to be visited in
// sequence, so this uses errgroup the way the teacher's go.mod pulls it in
// for FUSE's concurrent directory population, per DESIGN.md).
func (r *Refresher) refreshProjectDetails(ctx context.Context, next *Cache, projects []domain.Project) error {
	var mu sync.Mutex
	fields := make(map[string][]domain.ProjectCustomField, len(projects))
	users := make(map[string][]domain.User, len(projects))

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range projects {
		g.Go(func() error {
			pf, err := r.tracker.GetProjectCustomFields(gctx, p.ID)
			if err != nil {
				return nil
			}
			pu, err := r.tracker.ListProjectUsers(gctx, p.ID)
			if err != nil {
				pu = nil
			}
			mu.Lock()
			fields[p.ID] = pf
			users[p.ID] = pu
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	next.ProjectFields = fields
	next.ProjectUsers = users
	return err
}
