package gopresentation

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"
)

// Package is the set of parts in an OPC (zip) container, in archive order.
type Package struct {
	parts map[string]*Part
	order []string
}

func newPackage() *Package {
	return &Package{parts: make(map[string]*Part)}
}

// addPart adds or replaces a part holding raw bytes.
func (pkg *Package) addPart(name string, data []byte) *Part {
	if _, ok := pkg.parts[name]; !ok {
		pkg.order = append(pkg.order, name)
	}
	p := &Part{name: name, data: data, pkg: pkg}
	pkg.parts[name] = p
	return p
}

// Part returns the part with the given name (no leading slash).
func (pkg *Package) Part(name string) (*Part, error) {
	p, ok := pkg.parts[strings.TrimPrefix(name, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	return p, nil
}

// PartNames returns part names in archive order.
func (pkg *Package) PartNames() []string {
	names := make([]string, len(pkg.order))
	copy(names, pkg.order)
	return names
}

// Part is a single member of the package. XML parts are parsed on first
// access to Document and written back from the parsed tree afterwards.
type Part struct {
	name string
	data []byte
	doc  *etree.Document
	pkg  *Package

	rels       []Relationship
	relsLoaded bool
}

// Name returns the part name, e.g. "ppt/slides/slide1.xml".
func (p *Part) Name() string { return p.name }

// Document returns the parsed XML tree of the part.
func (p *Part) Document() (*etree.Document, error) {
	if p.doc == nil {
		doc, err := parseXML(p.name, p.data)
		if err != nil {
			return nil, err
		}
		p.doc = doc
	}
	return p.doc, nil
}

// Bytes returns the serialized part content.
func (p *Part) Bytes() ([]byte, error) {
	if p.doc == nil {
		return p.data, nil
	}
	data, err := p.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", p.name, err)
	}
	return data, nil
}

// Relationship is one entry of a part's .rels file.
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// IsExternal reports whether the target lies outside the package.
func (r Relationship) IsExternal() bool { return r.TargetMode == "External" }

// --- Relationship reading ---

type xmlRelForRead struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type xmlRelsForRead struct {
	XMLName       xml.Name        `xml:"Relationships"`
	Relationships []xmlRelForRead `xml:"Relationship"`
}

// Relationships returns the part's relationships. A part without a .rels
// file has none.
func (p *Part) Relationships() ([]Relationship, error) {
	if p.relsLoaded {
		return p.rels, nil
	}
	relsPart, ok := p.pkg.parts[relsPartName(p.name)]
	if !ok {
		p.relsLoaded = true
		return nil, nil
	}
	data, err := relsPart.Bytes()
	if err != nil {
		return nil, err
	}
	var rels xmlRelsForRead
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships %s: %w", relsPart.name, err)
	}
	for _, r := range rels.Relationships {
		p.rels = append(p.rels, Relationship(r))
	}
	p.relsLoaded = true
	return p.rels, nil
}

// RelatedPart returns the target of the first relationship of relType.
func (p *Part) RelatedPart(relType string) (*Part, error) {
	rels, err := p.Relationships()
	if err != nil {
		return nil, err
	}
	for _, r := range rels {
		if r.Type == relType && !r.IsExternal() {
			return p.target(r)
		}
	}
	return nil, fmt.Errorf("%w: no %s relationship from %s", ErrPartNotFound, path.Base(relType), p.name)
}

// RelatedParts returns the targets of every relationship of relType, in
// relationship order.
func (p *Part) RelatedParts(relType string) ([]*Part, error) {
	rels, err := p.Relationships()
	if err != nil {
		return nil, err
	}
	var parts []*Part
	for _, r := range rels {
		if r.Type != relType || r.IsExternal() {
			continue
		}
		t, err := p.target(r)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return parts, nil
}

// RelatedPartByID returns the target of relationship rID.
func (p *Part) RelatedPartByID(rID string) (*Part, error) {
	rels, err := p.Relationships()
	if err != nil {
		return nil, err
	}
	for _, r := range rels {
		if r.ID == rID {
			return p.target(r)
		}
	}
	return nil, fmt.Errorf("%w: relationship %s in %s", ErrPartNotFound, rID, p.name)
}

func (p *Part) target(r Relationship) (*Part, error) {
	name := resolveTarget(p.name, r.Target)
	if name == "" {
		return nil, fmt.Errorf("%w: target %q of %s escapes the package", ErrPartNotFound, r.Target, p.name)
	}
	return p.pkg.Part(name)
}

// relsPartName maps "ppt/slides/slide1.xml" to
// "ppt/slides/_rels/slide1.xml.rels". The package itself ("") maps to
// "_rels/.rels".
func relsPartName(name string) string {
	dir, file := path.Split(name)
	return dir + "_rels/" + file + ".rels"
}

// resolveTarget resolves a relationship target against the part that holds
// the relationship. It returns "" for targets that leave the package root.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	resolved := path.Join(path.Dir(source), target)
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return ""
	}
	return resolved
}
