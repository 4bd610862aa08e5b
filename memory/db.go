package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
)

var _ activities.Repository = &DB{}

// DB is a process-local activity store. Writes are accepted only when the incoming
// version is exactly one past the stored version.
type DB struct {
	mu    sync.RWMutex
	items map[string]activities.Activity
}

func NewDB(seed ...activities.Activity) (*DB, error) {
	d := &DB{
		items: make(map[string]activities.Activity, len(seed)),
	}

	for _, a := range seed {
		if _, ok := d.items[a.Name]; ok {
			return nil, activities.NewActivityAlreadyExistsError(fmt.Sprintf("Activity %q is seeded twice", a.Name), nil)
		}
		if a.Version == 0 {
			a.Version = 1
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}
		d.items[a.Name] = a.Clone()
	}

	return d, nil
}

func (d *DB) GetActivity(ctx context.Context, name string) (activities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return activities.Activity{}, activities.NewFailedToFetchError("GetActivity cancelled", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.items[name]
	if !ok {
		return activities.Activity{}, activities.NewActivityDoesNotExistError(fmt.Sprintf("Activity %q not found", name), nil)
	}

	return a.Clone(), nil
}

func (d *DB) GetActivities(ctx context.Context) ([]activities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, activities.NewFailedToFetchError("GetActivities cancelled", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]activities.Activity, 0, len(d.items))
	for _, a := range d.items {
		result = append(result, a.Clone())
	}

	return result, nil
}

func (d *DB) UpdateActivity(ctx context.Context, activity activities.Activity) error {
	if err := ctx.Err(); err != nil {
		return activities.NewFailedToWriteError("UpdateActivity cancelled", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.items[activity.Name]
	if !ok {
		return activities.NewActivityDoesNotExistError(fmt.Sprintf("Activity %q does not exist", activity.Name), nil)
	}

	if existing.Version != activity.Version-1 {
		return activities.NewVersionConflictError(
			fmt.Sprintf("Activity %q is at version %d, write was for version %d", activity.Name, existing.Version, activity.Version),
			nil,
		)
	}

	d.items[activity.Name] = activity.Clone()

	return nil
}
