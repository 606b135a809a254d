// Package registry maps component kinds to the priority that orders their
// per-frame update and contact callbacks. Lower values run first; kinds that
// declare nothing get priority 0.
package registry

import (
	"log"
	"sort"
	"sync"

	"github.com/yohamta/donburi"
)

// Declaration binds a component kind to its static priority.
type Declaration struct {
	Kind     donburi.IComponentType
	Priority int
}

// Bucket groups the kinds that share one priority value.
type Bucket struct {
	Priority int
	Kinds    []donburi.IComponentType
}

type slot struct {
	priority int
	order    int
}

// Registry is built once, on first use, from a static declaration list and
// is read-only afterwards.
type Registry struct {
	once    sync.Once
	source  func() []Declaration
	byKind  map[donburi.IComponentType]slot
	buckets []Bucket
}

func New(source func() []Declaration) *Registry {
	return &Registry{source: source}
}

// Init builds the registry. Repeated or concurrent calls are no-ops once the
// first call has completed.
func (r *Registry) Init() {
	r.once.Do(r.build)
}

func (r *Registry) build() {
	var decls []Declaration
	if r.source != nil {
		decls = r.source()
	}

	r.byKind = make(map[donburi.IComponentType]slot, len(decls))
	grouped := make(map[int][]donburi.IComponentType)
	for i, d := range decls {
		if d.Kind == nil {
			continue
		}
		if _, dup := r.byKind[d.Kind]; dup {
			log.Printf("[registry] duplicate declaration for %s ignored", d.Kind.Name())
			continue
		}
		r.byKind[d.Kind] = slot{priority: d.Priority, order: i}
		grouped[d.Priority] = append(grouped[d.Priority], d.Kind)
	}

	r.buckets = make([]Bucket, 0, len(grouped))
	for p, kinds := range grouped {
		r.buckets = append(r.buckets, Bucket{Priority: p, Kinds: kinds})
	}
	sort.Slice(r.buckets, func(i, j int) bool {
		return r.buckets[i].Priority < r.buckets[j].Priority
	})
}

// Priority returns the declared priority of kind, or 0.
func (r *Registry) Priority(kind donburi.IComponentType) int {
	r.Init()
	return r.byKind[kind].priority
}

// Order returns the sort key for kind: its priority, then its position in
// the declaration list. Undeclared kinds sort after declared ones of the
// same priority.
func (r *Registry) Order(kind donburi.IComponentType) (priority, order int) {
	r.Init()
	s, ok := r.byKind[kind]
	if !ok {
		return 0, len(r.byKind)
	}
	return s.priority, s.order
}

// Less orders two kinds for dispatch.
func (r *Registry) Less(a, b donburi.IComponentType) bool {
	pa, oa := r.Order(a)
	pb, ob := r.Order(b)
	if pa != pb {
		return pa < pb
	}
	return oa < ob
}

// Buckets returns the priority buckets in ascending order.
func (r *Registry) Buckets() []Bucket {
	r.Init()
	out := make([]Bucket, len(r.buckets))
	for i, b := range r.buckets {
		out[i] = Bucket{Priority: b.Priority, Kinds: append([]donburi.IComponentType(nil), b.Kinds...)}
	}
	return out
}

// Kinds returns every declared kind in dispatch order.
func (r *Registry) Kinds() []donburi.IComponentType {
	r.Init()
	kinds := make([]donburi.IComponentType, 0, len(r.byKind))
	for _, b := range r.buckets {
		kinds = append(kinds, b.Kinds...)
	}
	return kinds
}
