package input

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewFieldClampsInitial(t *testing.T) {
	f := NewField(DiceBounds, 80)
	v, ok := f.Value()

	assert.True(t, ok)
	assert.Equal(t, 50, v)
	assert.Equal(t, "50", f.Text())
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantText  string
		wantValue int
		wantEmpty bool
	}{
		{name: "number", raw: "12", wantText: "12", wantValue: 12},
		{name: "padded", raw: " 7 ", wantText: "7", wantValue: 7},
		{name: "out of range kept until commit", raw: "500", wantText: "500", wantValue: 500},
		{name: "empty is transient", raw: "", wantText: "", wantValue: 2, wantEmpty: true},
		{name: "garbage keeps previous", raw: "abc", wantText: "2", wantValue: 2},
		{name: "negative parses", raw: "-3", wantText: "-3", wantValue: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField(DiceBounds, 2).Edit(tt.raw)

			v, _ := f.Value()
			assert.Equal(t, tt.wantText, f.Text())
			assert.Equal(t, tt.wantValue, v)
			assert.Equal(t, tt.wantEmpty, f.Empty())
		})
	}
}

func TestEditGarbageAfterEmptyStaysEmpty(t *testing.T) {
	f := NewField(SideBounds, 6).Edit("").Edit("x")

	assert.True(t, f.Empty())
	assert.Equal(t, "", f.Text())
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name     string
		bounds   Bounds
		raw      string
		want     int
		adjusted bool
	}{
		{name: "dice zero", bounds: DiceBounds, raw: "0", want: 1, adjusted: true},
		{name: "dice empty", bounds: DiceBounds, raw: "", want: 1, adjusted: true},
		{name: "dice above max", bounds: DiceBounds, raw: "51", want: 50, adjusted: true},
		{name: "sides 200", bounds: SideBounds, raw: "200", want: 100, adjusted: true},
		{name: "sides empty", bounds: SideBounds, raw: "", want: 2, adjusted: true},
		{name: "sides one", bounds: SideBounds, raw: "1", want: 2, adjusted: true},
		{name: "valid untouched", bounds: SideBounds, raw: "20", want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField(tt.bounds, tt.bounds.Min).Edit(tt.raw).Commit()

			v, ok := f.Value()
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, strconv.Itoa(tt.want), f.Text())
			assert.Equal(t, tt.adjusted, f.Adjusted())
		})
	}
}

func TestResolveDoesNotCommit(t *testing.T) {
	f := NewField(DiceBounds, 3).Edit("")

	assert.Equal(t, 1, f.Resolve())
	assert.True(t, f.Empty(), "Resolve must not leave the empty state")
}

func TestCommitIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := rapid.SampledFrom([]Bounds{DiceBounds, SideBounds}).Draw(rt, "bounds")
		raw := rapid.OneOf(
			rapid.Just(""),
			rapid.StringMatching(`-?[0-9]{1,4}`),
			rapid.StringMatching(`[a-z]{1,3}`),
		).Draw(rt, "raw")

		once := NewField(b, b.Min).Edit(raw).Commit()
		twice := once.Commit()

		v1, _ := once.Value()
		v2, _ := twice.Value()
		assert.True(rt, b.Contains(v1), "committed value %d outside %+v", v1, b)
		assert.Equal(rt, v1, v2)
		assert.Equal(rt, once.Text(), twice.Text())
		assert.False(rt, twice.Adjusted())
	})
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Min: 2, Max: 100}

	assert.Equal(t, 2, b.Clamp(-5))
	assert.Equal(t, 42, b.Clamp(42))
	assert.Equal(t, 100, b.Clamp(1000))
	assert.True(t, b.Contains(2))
	assert.False(t, b.Contains(101))
}
