package lexema

import (
	"fmt"
)

// refChain is a persistent linked list of in-progress reference strings.
// Extension allocates a new head so sibling validation branches never
// observe each other's chain.
type refChain struct {
	ref  string
	next *refChain
}

func (rc *refChain) contains(ref string) bool {
	for n := rc; n != nil; n = n.next {
		if n.ref == ref {
			return true
		}
	}
	return false
}

// valContext carries everything a validator needs while descending: the
// catalog, the dotted error path, the document whose local references are
// in scope, the in-progress reference chain, and the injected data-check
// handle used for re-entrant dispatch from ref and union validators.
//
// valContext is a value type. Every with* method returns an extended copy;
// nothing is ever mutated in place, which is what keeps sibling branches
// of the recursion independent.
type valContext struct {
	catalog  *Catalog
	path     string
	docID    string
	refs     *refChain
	depth    int
	maxDepth int

	dataCheck func(ctx valContext, v any, n Node) error
}

func newContext(c *Catalog, docID string, opt Options) valContext {
	return valContext{
		catalog:   c,
		docID:     docID,
		maxDepth:  opt.MaxDepth,
		dataCheck: checkData,
	}
}

// withPath appends a dotted path segment.
func (ctx valContext) withPath(segment string) valContext {
	ctx.path = joinPath(ctx.path, segment)
	return ctx
}

// withIndex appends an array index to the path.
func (ctx valContext) withIndex(i int) valContext {
	ctx.path = fmt.Sprintf("%s[%d]", ctx.path, i)
	return ctx
}

// withDocument switches the document whose local references are in scope,
// used when a cross-document reference is followed.
func (ctx valContext) withDocument(id string) valContext {
	ctx.docID = id
	return ctx
}

// withReference adds ref to the in-progress chain.
func (ctx valContext) withReference(ref string) valContext {
	ctx.refs = &refChain{ref: ref, next: ctx.refs}
	return ctx
}

// hasReference reports whether ref is already being followed.
func (ctx valContext) hasReference(ref string) bool {
	return ctx.refs.contains(ref)
}

func (ctx valContext) tooDeep() bool {
	return ctx.maxDepth > 0 && ctx.depth > ctx.maxDepth
}

// at prefixes detail with the current path when one exists.
func (ctx valContext) at(detail string) string {
	if ctx.path == "" {
		return detail
	}
	return ctx.path + ": " + detail
}

func (ctx valContext) schemaErrf(format string, args ...any) error {
	return invalidSchemaf("%s", ctx.at(fmt.Sprintf(format, args...)))
}

func (ctx valContext) dataErrf(format string, args ...any) error {
	return dataValidationf("%s", ctx.at(fmt.Sprintf(format, args...)))
}
