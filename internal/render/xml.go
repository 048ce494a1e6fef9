// Package render serializes a region tree into Android layout XML.
package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"widgetgen/internal/model"
)

const (
	header = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
	indent = "    "
)

// ErrMalformedRegion is wrapped by every serialization failure.
var ErrMalformedRegion = errors.New("malformed region")

// XML renders root as an Android layout document. Output depends only on the
// tree: attributes keep their stored order and children their slice order.
//
// Each element is written on one line, preceded by its comment (if any):
//
//	<!-- comment -->
//	<TextView android:id="@+id/task_0_0" android:layout_width="match_parent" .../>
func XML(root *model.Region) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("render: %w: nil root", ErrMalformedRegion)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := writeRegion(&buf, root, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRegion(buf *bytes.Buffer, r *model.Region, depth int) error {
	if r.Element == "" {
		return fmt.Errorf("render: %w: %s region %q has no element", ErrMalformedRegion, r.Kind, r.ID)
	}
	pad := strings.Repeat(indent, depth)

	if r.Comment != "" {
		if strings.Contains(r.Comment, "--") {
			return fmt.Errorf("render: %w: comment on %s region contains \"--\"", ErrMalformedRegion, r.Kind)
		}
		buf.WriteString(pad + "<!-- " + r.Comment + " -->\n")
	}

	buf.WriteString(pad + "<" + r.Element)
	for _, ns := range r.Namespaces {
		writeAttr(buf, ns.Name, ns.Value)
	}
	if r.ID != "" {
		writeAttr(buf, "android:id", "@+id/"+r.ID)
	}
	for _, a := range r.Attrs {
		if a.Name == "" {
			return fmt.Errorf("render: %w: empty attribute name on %s region %q", ErrMalformedRegion, r.Kind, r.ID)
		}
		writeAttr(buf, a.Name, a.Value)
	}

	if len(r.Children) == 0 {
		buf.WriteString("/>\n")
		return nil
	}

	buf.WriteString(">\n")
	for _, c := range r.Children {
		if err := writeRegion(buf, c, depth+1); err != nil {
			return err
		}
	}
	buf.WriteString(pad + "</" + r.Element + ">\n")
	return nil
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(" " + name + `="`)
	// EscapeText only fails when the writer does; bytes.Buffer never does.
	_ = xml.EscapeText(buf, []byte(value))
	buf.WriteString(`"`)
}
