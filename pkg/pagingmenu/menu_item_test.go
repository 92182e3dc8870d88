package pagingmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	title := "Home"
	icon := testIcon(16, 16)
	highlighted := testIcon(16, 16)

	plain, err := NewMenuItem(ItemFields{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, TextMenuItem{Title: "Home"}, plain)

	withIcon, err := NewMenuItem(ItemFields{Title: &title, Icon: icon, HighlightedIcon: highlighted, Spacing: 6})
	require.NoError(t, err)
	assert.Equal(t, IconTextMenuItem{Title: "Home", Icon: icon, HighlightedIcon: highlighted, Spacing: 6}, withIcon)
	assert.Equal(t, "Home", withIcon.ItemTitle())

	empty := ""
	blank, err := NewMenuItem(ItemFields{Title: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", blank.ItemTitle())

	_, err = NewMenuItem(ItemFields{Icon: icon})
	assert.ErrorIs(t, err, ErrMissingTitle)
	assert.True(t, IsConfigurationError(err))
}

func TestNewMenuItem_incompleteIconItem(t *testing.T) {
	title := "Home"
	icon := testIcon(16, 16)

	tests := []struct {
		name   string
		fields ItemFields
		want   error
	}{
		{"icon only", ItemFields{Title: &title, Icon: icon}, ErrMissingIcon},
		{"highlighted icon only", ItemFields{Title: &title, HighlightedIcon: icon}, ErrMissingIcon},
		{"negative spacing", ItemFields{Title: &title, Icon: icon, HighlightedIcon: icon, Spacing: -1}, ErrNegativeSpacing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewMenuItem(tt.fields)
			assert.Nil(t, item)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestNewIconTextMenuItem(t *testing.T) {
	icon := testIcon(16, 16)

	item, err := NewIconTextMenuItem("Home", icon, icon, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(0), item.Spacing)

	_, err = NewIconTextMenuItem("Home", icon, nil, 4)
	assert.ErrorIs(t, err, ErrMissingIcon)

	_, err = NewIconTextMenuItem("Home", nil, icon, 4)
	assert.ErrorIs(t, err, ErrMissingIcon)

	_, err = NewIconTextMenuItem("Home", icon, icon, -2)
	assert.ErrorIs(t, err, ErrNegativeSpacing)
}
