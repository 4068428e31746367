package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/statelang/machine-runtime/types"
	"github.com/statelang/machine-runtime/value"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	leafStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	nullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))
)

func renderHeader(name string, t *types.Type) string {
	return nameStyle.Render(name) + " " + typeStyle.Render(t.String())
}

// renderTree renders a value as an indented tree, one node per line.
// Children are fetched through the public accessors, so every line shows a
// clone the way a machine would see it.
func renderTree(v *value.Value) string {
	var b strings.Builder
	writeNode(&b, v, "", "", "")
	return b.String()
}

// writeNode prints one value line and recurses into container children.
// marker is this node's branch glyph; prefix is the indentation all of this
// node's children share.
func writeNode(b *strings.Builder, v *value.Value, label, marker, prefix string) {
	b.WriteString(branchStyle.Render(marker))
	if label != "" {
		b.WriteString(nameStyle.Render(label))
		b.WriteString(": ")
	}

	child := func(i, n int) (childMarker, childPrefix string) {
		if i == n-1 {
			return prefix + "└─ ", prefix + "   "
		}
		return prefix + "├─ ", prefix + "│  "
	}

	switch v.Kind() {
	case types.KindTuple, types.KindNamedTuple:
		b.WriteString(typeStyle.Render(v.Type().String()))
		b.WriteByte('\n')
		arity := v.TupleArity()
		for i := 0; i < arity; i++ {
			elem := v.TupleGet(i)
			m, p := child(i, arity)
			writeNode(b, elem, fieldLabel(v.Type(), i), m, p)
			elem.Free()
		}
	case types.KindSeq:
		size := v.SeqSize()
		b.WriteString(typeStyle.Render(v.Type().String()))
		b.WriteString(leafStyle.Render(fmt.Sprintf(" size=%d", size)))
		b.WriteByte('\n')
		for i := 0; i < size; i++ {
			elem := v.SeqGet(i)
			m, p := child(i, size)
			writeNode(b, elem, fmt.Sprintf("%d", i), m, p)
			elem.Free()
		}
	case types.KindMap:
		b.WriteString(typeStyle.Render(v.Type().String()))
		b.WriteString(leafStyle.Render(fmt.Sprintf(" size=%d", v.MapSize())))
		b.WriteByte('\n')
		keys := v.MapKeys()
		vals := v.MapValues()
		size := keys.SeqSize()
		for i := 0; i < size; i++ {
			k := keys.SeqGet(i)
			mv := vals.SeqGet(i)
			m, p := child(i, size)
			writeNode(b, mv, k.String(), m, p)
			k.Free()
			mv.Free()
		}
		keys.Free()
		vals.Free()
	default:
		if v.IsNull() {
			b.WriteString(nullStyle.Render("null"))
		} else {
			b.WriteString(leafStyle.Render(v.String()))
		}
		b.WriteByte('\n')
	}
}

func fieldLabel(t *types.Type, i int) string {
	if i < len(t.Fields) && t.Fields[i].Name != "" {
		return t.Fields[i].Name
	}
	return fmt.Sprintf("%d", i)
}
