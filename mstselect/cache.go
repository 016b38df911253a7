package mstselect

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/katalvlaran/ifgnet/prim_kruskal"
)

// treeCache memoises solved trees by validity mask. A nil *treeCache is a
// disabled cache: every lookup misses and stores are dropped.
//
// Admission is probabilistic, so a stored tree may never be seen again. That
// only costs a recomputation: the tree of a mask is the same however it was
// obtained.
type treeCache struct {
	c *ristretto.Cache[string, *prim_kruskal.Tree]
}

func newTreeCache(size int) (*treeCache, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, *prim_kruskal.Tree]{
		NumCounters:        int64(size) * 10,
		MaxCost:            int64(size),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating tree cache: %w", err)
	}

	return &treeCache{c: c}, nil
}

func (tc *treeCache) get(mask string) (*prim_kruskal.Tree, bool) {
	if tc == nil {
		return nil, false
	}

	return tc.c.Get(mask)
}

func (tc *treeCache) set(mask string, t *prim_kruskal.Tree) {
	if tc == nil {
		return
	}
	tc.c.Set(mask, t, 1)
}

func (tc *treeCache) close() {
	if tc == nil {
		return
	}
	tc.c.Close()
}

// maskKey packs a validity mask into a compact string key.
func maskKey(valid []bool, buf []byte) string {
	n := (len(valid) + 7) / 8
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	for k, ok := range valid {
		if ok {
			buf[k/8] |= 1 << (k % 8)
		}
	}

	return string(buf)
}
