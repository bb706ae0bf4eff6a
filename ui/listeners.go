package ui

import (
	"fmt"
	"slices"
	"sort"

	"github.com/OpticalFlyer/strata/region"
)

type listener[M any] struct {
	id   behaviorID
	meta M
}

// listenerList is the storage shared by all managers. Entries whose
// behavior has been removed are dropped the next time the list is walked.
type listenerList[M any] struct {
	items []listener[M]
}

func (l *listenerList[M]) add(id behaviorID, meta M) {
	l.items = append(l.items, listener[M]{id: id, meta: meta})
}

// each calls fn for every live entry in order, stopping early when fn
// returns false. Dead entries are pruned along the way.
func (l *listenerList[M]) each(a *arena, fn func(e *behaviorEntry, meta M) bool) {
	live := l.items[:0]
	stopped := false
	for _, it := range l.items {
		e, ok := a.get(it.id)
		if !ok {
			continue
		}
		live = append(live, it)
		if !stopped && !fn(e, it.meta) {
			stopped = true
		}
	}
	clear(l.items[len(live):])
	l.items = live
}

// overlaps reports whether r intersects the region of any live entry.
func (l *listenerList[M]) overlaps(a *arena, r region.Region, regionOf func(M) region.Region) bool {
	found := false
	l.each(a, func(_ *behaviorEntry, meta M) bool {
		if regionOf(meta).Intersects(r) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (l *listenerList[M]) len() int { return len(l.items) }

// priorityList keeps listeners ordered by descending priority. Listeners
// with equal priority keep their insertion order.
type priorityList struct {
	listenerList[int]
}

func (l *priorityList) insert(id behaviorID, priority int) {
	i := sort.Search(len(l.items), func(i int) bool { return l.items[i].meta < priority })
	l.items = slices.Insert(l.items, i, listener[int]{id: id, meta: priority})
}

func identityRegion(r region.Region) region.Region { return r }

// spatialListeners holds the region-scoped and global listeners of one
// consumable event category.
type spatialListeners struct {
	regions listenerList[region.Region]
	global  priorityList
}

func (s *spatialListeners) check(a *arena, r region.Region, kind string) error {
	if s.regions.overlaps(a, r, identityRegion) {
		return fmt.Errorf("%w: %s space %v", ErrRegionAlreadyClaimed, kind, r)
	}
	return nil
}

func (s *spatialListeners) claim(a *arena, id behaviorID, r region.Region, kind string) error {
	if err := s.check(a, r, kind); err != nil {
		return err
	}
	s.regions.add(id, r)
	return nil
}

// dispatch offers the event to the region listeners containing mouse and
// then to the global listeners in priority order, until fn reports that
// the event was consumed.
func (s *spatialListeners) dispatch(a *arena, mouse region.Position, fn func(e *behaviorEntry) bool) bool {
	consumed := false
	if mouse.Known() {
		s.regions.each(a, func(e *behaviorEntry, r region.Region) bool {
			if r.ContainsPosition(mouse) && fn(e) {
				consumed = true
				return false
			}
			return true
		})
	}
	if consumed {
		return true
	}
	s.global.each(a, func(e *behaviorEntry, _ int) bool {
		if fn(e) {
			consumed = true
			return false
		}
		return true
	})
	return consumed
}
