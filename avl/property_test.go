package avl_test

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/dvector/avl"
	"github.com/stretchr/testify/require"
)

type model []int

func (m model) insert(at int, values ...int) model {
	out := make(model, 0, len(m)+len(values))
	out = append(out, m[:at]...)
	out = append(out, values...)
	return append(out, m[at:]...)
}

func (m model) erase(at int) model {
	return append(m[:at:at], m[at+1:]...)
}

func TestTreeMatchesSliceModel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		r := rand.New(rand.NewSource(seed))
		tree := avl.New(avl.Config[int]{})
		m := model{}
		for i := 0; i < 1500; i++ {
			switch op := r.Intn(10); {
			case op < 4 || len(m) == 0:
				at := r.Intn(len(m) + 1)
				values := make([]int, 1+r.Intn(4))
				for j := range values {
					values[j] = i*10 + j
				}
				require.NoError(t, tree.Insert(at, values...))
				m = m.insert(at, values...)
			case op < 5:
				require.NoError(t, tree.Append(i))
				m = m.insert(len(m), i)
			case op < 6:
				at := r.Intn(len(m))
				require.NoError(t, tree.Set(at, -i))
				m[at] = -i
			default:
				at := r.Intn(len(m))
				require.NoError(t, tree.Erase(at))
				m = m.erase(at)
			}
			require.Equal(t, len(m), tree.Len())
		}
		require.NoError(t, tree.Check())
		require.Equal(t, []int(m), tree.Values())
	}
}

func TestCursorMatchesSliceModel(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	tree := avl.New(avl.Config[int]{NoAppendFastPath: true})
	m := model{}
	for i := 0; i < 500; i++ {
		at := r.Intn(len(m) + 1)
		require.NoError(t, tree.Insert(at, i))
		m = m.insert(at, i)
	}
	c := tree.Begin()
	for i := 0; i < 2000; i++ {
		k := r.Intn(len(m)+1) - c.Pos()
		require.NoError(t, c.Advance(k))
		if c.Pos() == len(m) {
			require.True(t, c.IsEnd())
			continue
		}
		v, err := c.Value()
		require.NoError(t, err)
		require.Equal(t, m[c.Pos()], v)
	}
	var forward []int
	for c = tree.Begin(); !c.IsEnd(); {
		v, _ := c.Value()
		forward = append(forward, v)
		require.NoError(t, c.Next())
	}
	require.Equal(t, []int(m), forward)
}

func FuzzInsertErase(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte{200, 17, 3, 255, 128, 64, 99})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := avl.New(avl.Config[int]{})
		m := model{}
		for i, b := range ops {
			if b&1 == 0 || len(m) == 0 {
				at := int(b>>1) % (len(m) + 1)
				if err := tree.Insert(at, i); err != nil {
					t.Fatalf("Insert(%d) failed: %v", at, err)
				}
				m = m.insert(at, i)
			} else {
				at := int(b>>1) % len(m)
				if err := tree.Erase(at); err != nil {
					t.Fatalf("Erase(%d) failed: %v", at, err)
				}
				m = m.erase(at)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("op %d: %v\n%s", i, err, tree)
			}
		}
		got := tree.Values()
		if len(got) != len(m) {
			t.Fatalf("len = %d, want %d", len(got), len(m))
		}
		for i := range m {
			if got[i] != m[i] {
				t.Fatalf("element %d = %d, want %d", i, got[i], m[i])
			}
		}
	})
}
