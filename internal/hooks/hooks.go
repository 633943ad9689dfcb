package hooks

import (
	"context"
	"sort"
)

// Priority orders handlers on a Point. Higher values run first; handlers with
// equal priority run in registration order.
type Priority int

const (
	Last             Priority = 0
	VeryLow          Priority = 100
	Low              Priority = 200
	LowerThanNormal  Priority = 300
	Normal           Priority = 400
	HigherThanNormal Priority = 500
	High             Priority = 600
	VeryHigh         Priority = 700
	First            Priority = 800
)

// PrefixFunc runs before the original method. Returning false skips the
// original; remaining prefixes still run.
type PrefixFunc[T any] func(ctx context.Context, instance T) bool

// PostfixFunc runs after the original method.
type PostfixFunc[T any] func(ctx context.Context, instance T)

type handler[T any] struct {
	owner    string
	priority Priority
	seq      int
	prefix   PrefixFunc[T]
	postfix  PostfixFunc[T]
}

// Point is one interceptable host method. Handlers run synchronously on the
// caller's goroutine.
type Point[T any] struct {
	name     string
	seq      int
	prefixes []handler[T]
	posts    []handler[T]
}

// NewPoint creates an empty interception point.
func NewPoint[T any](name string) *Point[T] {
	return &Point[T]{name: name}
}

// Name returns the point's name.
func (p *Point[T]) Name() string { return p.name }

// Prefix registers fn to run before the original method.
func (p *Point[T]) Prefix(owner string, priority Priority, fn PrefixFunc[T]) {
	p.seq++
	p.prefixes = insert(p.prefixes, handler[T]{owner: owner, priority: priority, seq: p.seq, prefix: fn})
}

// Postfix registers fn to run after the original method.
func (p *Point[T]) Postfix(owner string, priority Priority, fn PostfixFunc[T]) {
	p.seq++
	p.posts = insert(p.posts, handler[T]{owner: owner, priority: priority, seq: p.seq, postfix: fn})
}

// Owners lists the owners with at least one handler on the point, in
// execution order, prefixes first.
func (p *Point[T]) Owners() []string {
	owners := make([]string, 0, len(p.prefixes)+len(p.posts))
	for _, h := range p.prefixes {
		owners = append(owners, h.owner)
	}
	for _, h := range p.posts {
		owners = append(owners, h.owner)
	}
	return owners
}

// Run invokes the prefixes, then original unless a prefix vetoed it, then the
// postfixes. It reports whether original ran. A nil original is treated as a
// method with no body.
func (p *Point[T]) Run(ctx context.Context, instance T, original func(context.Context, T)) bool {
	runOriginal := true
	for _, h := range p.prefixes {
		if !h.prefix(ctx, instance) {
			runOriginal = false
		}
	}
	if runOriginal && original != nil {
		original(ctx, instance)
	}
	for _, h := range p.posts {
		h.postfix(ctx, instance)
	}
	return runOriginal
}

func insert[T any](list []handler[T], h handler[T]) []handler[T] {
	list = append(list, h)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority > list[j].priority
		}
		return list[i].seq < list[j].seq
	})
	return list
}
