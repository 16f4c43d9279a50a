package gopresentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelsPartName(t *testing.T) {
	assert.Equal(t, "_rels/.rels", relsPartName(""))
	assert.Equal(t, "ppt/_rels/presentation.xml.rels", relsPartName("ppt/presentation.xml"))
	assert.Equal(t, "ppt/slides/_rels/slide1.xml.rels", relsPartName("ppt/slides/slide1.xml"))
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		source, target, want string
	}{
		{"", "ppt/presentation.xml", "ppt/presentation.xml"},
		{"ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides/slide1.xml", "../slideLayouts/slideLayout1.xml", "ppt/slideLayouts/slideLayout1.xml"},
		{"ppt/slides/slide1.xml", "/ppt/media/image1.png", "ppt/media/image1.png"},
		{"ppt/slides/slide1.xml", "../../../etc/passwd", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveTarget(tt.source, tt.target), tt.target)
	}
}

func TestPartRelationships(t *testing.T) {
	pres := openTestPresentation(t)
	slide := pres.slides[0].GetPart()

	rels, err := slide.Relationships()
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, relTypeSlideLayout, rels[0].Type)
	assert.False(t, rels[0].IsExternal())

	layout, err := slide.RelatedPartByID("rId1")
	require.NoError(t, err)
	assert.Equal(t, "ppt/slideLayouts/slideLayout1.xml", layout.Name())

	_, err = slide.RelatedPartByID("rId9")
	assert.ErrorIs(t, err, ErrPartNotFound)
	_, err = slide.RelatedPart(relTypeSlideMaster)
	assert.ErrorIs(t, err, ErrPartNotFound)

	media, err := pres.GetPackage().Part("/ppt/media/image1.png")
	require.NoError(t, err)
	rels, err = media.Relationships()
	require.NoError(t, err)
	assert.Empty(t, rels)
}

func TestPartBytesBeforeAndAfterParse(t *testing.T) {
	pkg := newPackage()
	raw := []byte(`<?xml version="1.0"?><r  a="1"/>`)
	p := pkg.addPart("x.xml", raw)

	b, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, raw, b)

	doc, err := p.Document()
	require.NoError(t, err)
	doc.Root().CreateAttr("b", "2")
	b, err = p.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(b), `b="2"`)

	pkg.addPart("x.xml", raw)
	assert.Equal(t, []string{"x.xml"}, pkg.PartNames())
}
