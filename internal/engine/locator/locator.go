// Package locator implements the default sprockets-style dependency locator:
// directive scanning, search-path probing, depth-first flattening, and the
// traversal cache.
package locator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Locator = (*Default)(nil)

// Default is the standard Locator implementation.
//
// Concurrent resolutions of the same uncached root are collapsed into a
// single traversal with singleflight. The cache contract only requires
// last-write-wins, so this is purely an optimization.
type Default struct {
	source ports.ByteSource
	log    ports.Logger
	cache  *traversalCache
	group  singleflight.Group
}

// NewDefault creates a Default locator reading through the given byte source.
func NewDefault(source ports.ByteSource, log ports.Logger) *Default {
	return &Default{
		source: source,
		log:    log,
		cache:  newTraversalCache(),
	}
}

// Resolve returns the ordered, deduplicated dependency sequence for root,
// serving it from the traversal cache when the active policy allows. The
// policy is read from cfg on every call, never captured.
func (l *Default) Resolve(ctx context.Context, root domain.Script, cfg ports.ResolutionConfig) ([]domain.Script, error) {
	if root.Path() == "" {
		return nil, domain.ErrEmptyScriptPath
	}

	policy := cfg.CachePolicy()
	if policy.Disabled() {
		return l.traverse(ctx, root, cfg)
	}

	if scripts, ok := l.cache.get(root, policy, time.Now()); ok {
		return scripts, nil
	}

	v, err, _ := l.group.Do(root.Key(), func() (any, error) {
		scripts, err := l.traverse(ctx, root, cfg)
		if err != nil {
			return nil, err
		}
		l.cache.put(root, scripts, time.Now())
		return scripts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Script), nil
}

// ClearCache drops all memoized traversals.
func (l *Default) ClearCache() {
	l.cache.clear()
}

// traversal carries the depth-first search state for one resolution request.
// It is confined to the goroutine running the traversal.
type traversal struct {
	l        *Default
	ctx      context.Context
	cfg      ports.ResolutionConfig
	visiting map[domain.Script]bool
	visited  map[domain.Script]bool
	path     []domain.Script
	out      []domain.Script
}

func (l *Default) traverse(ctx context.Context, root domain.Script, cfg ports.ResolutionConfig) ([]domain.Script, error) {
	t := &traversal{
		l:        l,
		ctx:      ctx,
		cfg:      cfg,
		visiting: make(map[domain.Script]bool),
		visited:  make(map[domain.Script]bool),
	}

	content, err := ReadScript(ctx, l.source, root, cfg.Locations())
	if err != nil {
		return nil, err
	}
	if err := t.visit(root, content); err != nil {
		return nil, err
	}

	l.log.Info(fmt.Sprintf("resolved %s (%d scripts)", root.Key(), len(t.out)))
	return t.out, nil
}

// visit emits the script's dependency subtree in post-order: every
// dependency lands strictly before its dependents, and the first discovery
// wins when independent subtrees share a dependency.
func (t *traversal) visit(s domain.Script, content []byte) error {
	refs, err := scanDirectives(content)
	if err != nil {
		return zerr.With(err, "script", s.Path())
	}

	t.visiting[s] = true
	t.path = append(t.path, s)

	for _, ref := range refs {
		dep, depContent, err := t.resolve(ref)
		if err != nil {
			return err
		}
		if t.visited[dep] {
			continue
		}
		if t.visiting[dep] {
			return t.cycleError(dep)
		}
		if err := t.visit(dep, depContent); err != nil {
			return err
		}
	}

	t.path = t.path[:len(t.path)-1]
	delete(t.visiting, s)
	t.visited[s] = true
	t.out = append(t.out, s)
	return nil
}

// resolve turns a raw directive reference into a concrete script plus its
// content. Bare names are classified by the search location that supplies
// them; explicit references read their origin directly.
func (t *traversal) resolve(ref domain.Reference) (domain.Script, []byte, error) {
	if ref.Explicit() {
		origin, rel := ref.OriginPath()
		content, err := t.l.source.Read(t.ctx, origin, rel)
		if err != nil {
			return domain.Script{}, nil, unresolved(err, "reference", ref.String())
		}
		return domain.NewExplicitScript(origin, rel), content, nil
	}

	loc, content, err := probe(t.ctx, t.l.source, ref.Name(), t.cfg.Locations())
	if err != nil {
		return domain.Script{}, nil, err
	}
	return domain.NewScript(loc.Library, ref.Name()), content, nil
}

// cycleError reports the full cycle chain, mirroring the order the scripts
// were entered on the traversal stack.
func (t *traversal) cycleError(dep domain.Script) error {
	start := 0
	for i, node := range t.path {
		if node == dep {
			start = i
			break
		}
	}

	var b strings.Builder
	for _, node := range t.path[start:] {
		b.WriteString(node.Path())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.Path())

	return zerr.With(domain.ErrCycleDetected, "cycle", b.String())
}

// ReadScript materializes a script's bytes: origin-qualified scripts read
// their origin directly, search-relative scripts probe the locations in
// priority order.
func ReadScript(ctx context.Context, source ports.ByteSource, s domain.Script, locations []domain.SearchLocation) ([]byte, error) {
	if origin, rel, ok := s.Origin(); ok {
		content, err := source.Read(ctx, origin, rel)
		if err != nil {
			return nil, unresolved(err, "script", s.Path())
		}
		return content, nil
	}

	_, content, err := probe(ctx, source, s.Path(), locations)
	return content, err
}

// probe walks the search locations front to back and returns the first hit.
// A miss at one location is never an error by itself; only exhausting the
// whole list is.
func probe(ctx context.Context, source ports.ByteSource, rel string, locations []domain.SearchLocation) (domain.SearchLocation, []byte, error) {
	for _, loc := range locations {
		content, err := source.Read(ctx, loc.Origin, loc.Join(rel))
		if err == nil {
			return loc, content, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		// The byte source failed for a reason other than absence; that is
		// fatal for the enclosing resolution.
		return domain.SearchLocation{}, nil, unresolved(err, "name", rel)
	}
	return domain.SearchLocation{}, nil, zerr.With(domain.ErrUnresolvedDependency, "name", rel)
}

func unresolved(cause error, key, value string) error {
	if errors.Is(cause, domain.ErrNotFound) {
		return zerr.With(domain.ErrUnresolvedDependency, key, value)
	}
	return zerr.With(zerr.Wrap(cause, domain.ErrUnresolvedDependency.Error()), key, value)
}
