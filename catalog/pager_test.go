package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movie-catalog-cli/model"
)

func TestPager_BoundariesAreNoOps(t *testing.T) {
	p := NewPager().WithTotal(3)

	assert.False(t, p.HasPrev())
	assert.Equal(t, 1, p.Prev().Page)

	last := p.Next().Next()
	assert.Equal(t, 3, last.Page)
	assert.False(t, last.HasNext())
	assert.Equal(t, 3, last.Next().Page)
	assert.Equal(t, 2, last.Prev().Page)
}

func TestPager_StaysInRange(t *testing.T) {
	p := NewPager().WithTotal(4)
	moves := []func(Pager) Pager{Pager.Next, Pager.Next, Pager.Next, Pager.Next, Pager.Next, Pager.Prev, Pager.Prev, Pager.Prev, Pager.Prev, Pager.Prev}
	for _, move := range moves {
		p = move(p)
		assert.GreaterOrEqual(t, p.Page, 1)
		assert.LessOrEqual(t, p.Page, p.TotalPages)
	}
}

func TestPager_WithTotalClamps(t *testing.T) {
	p := Pager{Page: 5, TotalPages: 5}

	shrunk := p.WithTotal(2)
	assert.Equal(t, 2, shrunk.Page)

	empty := p.WithTotal(0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Equal(t, 1, empty.Page)
}

func TestFavorites_ToggleRoundTrip(t *testing.T) {
	start := NewFavorites("1", "2")

	added := start.Toggle("3")
	assert.True(t, added.Contains("3"))
	assert.False(t, start.Contains("3"), "toggle must not mutate the receiver")

	back := added.Toggle("3")
	assert.Equal(t, start.IDs(), back.IDs())

	removed := start.Toggle("1").Toggle("1")
	assert.ElementsMatch(t, start.IDs(), removed.IDs())
}

func TestFavorites_Dedup(t *testing.T) {
	f := NewFavorites("1", "1", "", "2")
	assert.Equal(t, []model.MovieID{"1", "2"}, f.IDs())
	assert.Equal(t, 2, f.Len())
}
