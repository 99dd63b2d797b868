package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentTarget(t *testing.T) {
	tests := []struct {
		intent Intent
		want   string
		ok     bool
	}{
		{DetailIntent("2"), "attractiveView/2", true},
		{DetailIntent("a b/c"), "attractiveView/a%20b%2Fc", true},
		{FindOptionsIntent(), "FindOptions", true},
		{MapIntent("geo:0,0"), "", false},
		{RefreshIntent(), "", false},
	}
	for _, tt := range tests {
		got, ok := tt.intent.Target()
		assert.Equal(t, tt.want, got, tt.intent.Kind.String())
		assert.Equal(t, tt.ok, ok, tt.intent.Kind.String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		target  string
		want    Route
		wantErr bool
	}{
		{"Home", Route{Name: RouteHome}, false},
		{"ListAttractive", Route{Name: RouteCatalog}, false},
		{"FindOptions", Route{Name: RouteFindOptions}, false},
		{"attractiveView/2", Route{Name: RouteDetail, ID: "2"}, false},
		{"attractiveView/a%20b%2Fc", Route{Name: RouteDetail, ID: "a b/c"}, false},
		{"attractiveView/", Route{}, true},
		{"Settings", Route{}, true},
		{"", Route{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.target)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownRoute, tt.target)
			continue
		}
		require.NoError(t, err, tt.target)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.target, got.Target())
	}
}

func TestStack(t *testing.T) {
	s := NewStack(Route{Name: RouteHome})
	assert.Equal(t, 1, s.Depth())

	_, ok := s.Back()
	assert.False(t, ok, "root is never popped")

	r, err := s.Navigate("ListAttractive")
	require.NoError(t, err)
	assert.Equal(t, RouteCatalog, r.Name)

	_, err = s.Navigate("attractiveView/7")
	require.NoError(t, err)
	assert.Equal(t, Route{Name: RouteDetail, ID: "7"}, s.Current())

	_, err = s.Navigate("nowhere")
	require.Error(t, err)
	assert.Equal(t, 3, s.Depth(), "failed navigation does not push")

	popped, ok := s.Back()
	require.True(t, ok)
	assert.Equal(t, "7", popped.ID)
	assert.Equal(t, RouteCatalog, s.Current().Name)
}
