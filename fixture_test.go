package gopresentation

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

var nsDecl = fmt.Sprintf(`xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"`, nsDrawingML, nsOfficeDocRels, nsPresentationML)

// sldXML wraps spTree content in a slide-like root (sld, sldLayout, sldMaster).
func sldXML(root, name, body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:` + root + ` ` + nsDecl + `>
  <p:cSld name="` + name + `">
    <p:spTree>
      <p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
      <p:grpSpPr/>
` + body + `
    </p:spTree>
  </p:cSld>
</p:` + root + `>`
}

func xfrmXML(x, y, cx, cy int64) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy)
}

// phSp returns a p:sp placeholder; phAttrs is the raw attribute list of p:ph
// and xfrm the content of p:spPr.
func phSp(id int, name, phAttrs, xfrm string) string {
	return fmt.Sprintf(`      <p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph %s/></p:nvPr></p:nvSpPr><p:spPr>%s</p:spPr></p:sp>
`, id, name, phAttrs, xfrm)
}

func textSp(id int, name, text string) string {
	return fmt.Sprintf(`      <p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>%s</p:spPr><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>
`, id, name, xfrmXML(10, 20, 30, 40), text)
}

func picXML(id int, name string) string {
	return fmt.Sprintf(`      <p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="rId7"/></p:blipFill><p:spPr>%s</p:spPr></p:pic>
`, id, name, xfrmXML(1, 2, 3, 4))
}

// testLayoutBody has a title placeholder (idx 0) and a table placeholder at
// idx 1 with geometry 100/200/300/400.
var testLayoutBody = phSp(2, "Title 1", `type="title"`, xfrmXML(5, 6, 7, 8)) +
	phSp(3, "Table Placeholder 2", `type="tbl" idx="1"`, xfrmXML(100, 200, 300, 400))

// testSlideBody has a title, a text box and a geometry-less table
// placeholder matching layout idx 1.
var testSlideBody = phSp(2, "Title 1", `type="title"`, "") +
	textSp(3, "TextBox 2", "hello") +
	phSp(4, "Table Placeholder 3", `type="tbl" idx="1"`, "")

func buildPPTX(t *testing.T, slideBody, layoutBody string) []byte {
	t.Helper()
	return buildPPTXWithMaster(t, slideBody, layoutBody, "")
}

// testMasterBody has title and body placeholders, the body at 1/2/3/4.
var testMasterBody = phSp(2, "Title Placeholder 1", `type="title"`, xfrmXML(9, 9, 9, 9)) +
	phSp(3, "Text Placeholder 2", `type="body" idx="1"`, xfrmXML(1, 2, 3, 4))

func buildPPTXWithMaster(t *testing.T, slideBody, layoutBody, masterBody string) []byte {
	t.Helper()
	const relsHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`
	rel := func(id, typ, target string) string {
		return fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`, id, typ, target)
	}

	parts := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/></Types>`},
		{"_rels/.rels", relsHeader + rel("rId1", relTypeOfficeDoc, "ppt/presentation.xml") + `</Relationships>`},
		{"ppt/presentation.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation ` + nsDecl + `><p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst><p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst><p:sldSz cx="9144000" cy="6858000"/></p:presentation>`},
		{"ppt/_rels/presentation.xml.rels", relsHeader +
			rel("rId1", relTypeSlideMaster, "slideMasters/slideMaster1.xml") +
			rel("rId2", relTypeSlide, "slides/slide1.xml") + `</Relationships>`},
		{"ppt/slideMasters/slideMaster1.xml", sldXML("sldMaster", "", masterBody)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", relsHeader +
			rel("rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml") + `</Relationships>`},
		{"ppt/slideLayouts/slideLayout1.xml", sldXML("sldLayout", "Title and Table", layoutBody)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", relsHeader +
			rel("rId1", relTypeSlideMaster, "../slideMasters/slideMaster1.xml") + `</Relationships>`},
		{"ppt/slides/slide1.xml", sldXML("sld", "", slideBody)},
		{"ppt/slides/_rels/slide1.xml.rels", relsHeader +
			rel("rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml") + `</Relationships>`},
		{"ppt/media/image1.png", "not really a png"},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func openPPTX(t *testing.T, data []byte) *Presentation {
	t.Helper()
	pres, err := ReadFrom(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return pres
}

// openTestPresentation opens the standard slide/layout fixture.
func openTestPresentation(t *testing.T) *Presentation {
	t.Helper()
	return openPPTX(t, buildPPTX(t, testSlideBody, testLayoutBody))
}

// roundTrip writes the presentation to a buffer and reads it back.
func roundTrip(t *testing.T, p *Presentation) *Presentation {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))
	return openPPTX(t, buf.Bytes())
}

// newTestCollection builds a collection over a bare slide tree, with no
// owning part.
func newTestCollection(t *testing.T, body string) *ShapeCollection {
	t.Helper()
	doc, err := parseXML("test", []byte(sldXML("sld", "", body)))
	require.NoError(t, err)
	tree := doc.Root().FindElement("./p:cSld/p:spTree")
	require.NotNil(t, tree)
	return NewShapeCollection(tree, nil, nil)
}

// treeString serializes the document holding c's tree.
func treeString(t *testing.T, c *ShapeCollection) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(c.Tree().Copy())
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return s
}
