package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetgen/internal/model"
)

func TestXMLNested(t *testing.T) {
	root := &model.Region{
		Kind:       model.KindRoot,
		Element:    "LinearLayout",
		ID:         "root",
		Comment:    "demo",
		Namespaces: []model.Attr{{Name: "xmlns:android", Value: "http://schemas.android.com/apk/res/android"}},
		Attrs:      []model.Attr{{Name: "android:orientation", Value: "vertical"}},
		Children: []*model.Region{
			{Kind: model.KindSlot, Element: "TextView", ID: "task_0_0", Attrs: []model.Attr{{Name: "android:visibility", Value: "gone"}}},
		},
	}

	out, err := XML(root)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="utf-8"?>
<!-- demo -->
<LinearLayout xmlns:android="http://schemas.android.com/apk/res/android" android:id="@+id/root" android:orientation="vertical">
    <TextView android:id="@+id/task_0_0" android:visibility="gone"/>
</LinearLayout>
`
	assert.Equal(t, want, string(out))
}

func TestXMLEscapesValues(t *testing.T) {
	root := &model.Region{
		Element: "TextView",
		Attrs:   []model.Attr{{Name: "android:text", Value: `a<b & "c"`}},
	}
	out, err := XML(root)
	require.NoError(t, err)
	assert.Contains(t, string(out), `android:text="a&lt;b &amp; &#34;c&#34;"`)
}

func TestXMLMalformed(t *testing.T) {
	tests := []struct {
		name string
		root *model.Region
	}{
		{"nil root", nil},
		{"missing element", &model.Region{Kind: model.KindCell}},
		{"nested missing element", &model.Region{Element: "LinearLayout", Children: []*model.Region{{Kind: model.KindSlot}}}},
		{"double dash comment", &model.Region{Element: "LinearLayout", Comment: "a -- b"}},
		{"empty attribute", &model.Region{Element: "TextView", Attrs: []model.Attr{{Value: "x"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := XML(tt.root)
			assert.ErrorIs(t, err, ErrMalformedRegion)
			assert.Nil(t, out)
		})
	}
}

func TestXMLDeterministic(t *testing.T) {
	root := &model.Region{Element: "LinearLayout", Children: []*model.Region{
		{Element: "TextView", ID: "a"},
		{Element: "TextView", ID: "b"},
	}}
	first, err := XML(root)
	require.NoError(t, err)
	second, err := XML(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
