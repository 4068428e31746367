package typespec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// node is one type expression in the YAML tree. Exactly one of the payload
// fields is set after unmarshalling.
type node struct {
	prim    string
	Seq     *node
	Map     *mapSpec
	Tuple   []*node
	NTuple  []fieldSpec
	Foreign string
}

type mapSpec struct {
	Key *node `yaml:"key"`
	Val *node `yaml:"val"`
}

type fieldSpec struct {
	Name string `yaml:"name"`
	Type *node  `yaml:"type"`
}

func (n *node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.prim = value.Value
		return nil
	}
	type rawNode struct {
		Seq     *node       `yaml:"seq"`
		Map     *mapSpec    `yaml:"map"`
		Tuple   []*node     `yaml:"tuple"`
		NTuple  []fieldSpec `yaml:"ntuple"`
		Foreign string      `yaml:"foreign"`
	}
	var raw rawNode
	if err := value.Decode(&raw); err != nil {
		return err
	}
	n.Seq, n.Map, n.Tuple, n.NTuple, n.Foreign =
		raw.Seq, raw.Map, raw.Tuple, raw.NTuple, raw.Foreign
	return nil
}

type specFile struct {
	Types map[string]*node `yaml:"types"`
}

var primitives = map[string]func() *types.Type{
	"any":     types.Any,
	"bool":    types.Bool,
	"int":     types.Int,
	"event":   types.Event,
	"machine": types.Machine,
	"model":   types.Model,
}

// Parse decodes a YAML typespec document into resolved type descriptors.
// Foreign declarations are looked up in reg, which may be nil when the spec
// declares none.
func Parse(data []byte, reg *types.Registry) (map[string]*types.Type, error) {
	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidSpec, err, "malformed yaml")
	}
	if len(file.Types) == 0 {
		return nil, errors.InvalidSpec(nil, "spec declares no types")
	}

	r := &resolver{
		decls:    file.Types,
		resolved: make(map[string]*types.Type, len(file.Types)),
		visiting: make(map[string]bool),
		registry: reg,
	}
	for name := range file.Types {
		if _, err := r.resolveName(name); err != nil {
			return nil, err
		}
	}
	return r.resolved, nil
}

// ParseFile reads and parses a typespec document from disk.
func ParseFile(path string, reg *types.Registry) (map[string]*types.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindNotFound, err,
			fmt.Sprintf("read %s", path))
	}
	return Parse(data, reg)
}

type resolver struct {
	decls    map[string]*node
	resolved map[string]*types.Type
	visiting map[string]bool
	registry *types.Registry
}

func (r *resolver) resolveName(name string) (*types.Type, error) {
	if t, ok := r.resolved[name]; ok {
		return t, nil
	}
	if r.visiting[name] {
		return nil, errors.InvalidSpec([]string{name}, "reference cycle")
	}
	decl, ok := r.decls[name]
	if !ok {
		return nil, errors.InvalidSpec([]string{name}, "unknown type reference")
	}

	r.visiting[name] = true
	t, err := r.resolveNode(decl, name)
	delete(r.visiting, name)
	if err != nil {
		return nil, err
	}
	r.resolved[name] = t
	return t, nil
}

func (r *resolver) resolveNode(n *node, path string) (*types.Type, error) {
	if n == nil {
		return nil, errors.InvalidSpec([]string{path}, "empty type expression")
	}
	switch {
	case n.prim != "":
		if mk, ok := primitives[n.prim]; ok {
			return mk(), nil
		}
		return r.resolveName(n.prim)

	case n.Seq != nil:
		elem, err := r.resolveNode(n.Seq, path+".seq")
		if err != nil {
			return nil, err
		}
		return types.SeqOf(elem), nil

	case n.Map != nil:
		if n.Map.Key == nil || n.Map.Val == nil {
			return nil, errors.InvalidSpec([]string{path}, "map needs key and val")
		}
		key, err := r.resolveNode(n.Map.Key, path+".key")
		if err != nil {
			return nil, err
		}
		val, err := r.resolveNode(n.Map.Val, path+".val")
		if err != nil {
			return nil, err
		}
		return types.MapOf(key, val), nil

	case n.Tuple != nil:
		elems := make([]*types.Type, len(n.Tuple))
		for i, e := range n.Tuple {
			t, err := r.resolveNode(e, fmt.Sprintf("%s.%d", path, i))
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return types.Tuple(elems...), nil

	case n.NTuple != nil:
		fields := make([]types.Field, len(n.NTuple))
		seen := make(map[string]bool, len(n.NTuple))
		for i, f := range n.NTuple {
			if f.Name == "" {
				return nil, errors.InvalidSpec([]string{path}, "ntuple field needs a name")
			}
			if seen[f.Name] {
				return nil, errors.InvalidSpec([]string{path, f.Name}, "duplicate field name")
			}
			seen[f.Name] = true
			t, err := r.resolveNode(f.Type, path+"."+f.Name)
			if err != nil {
				return nil, err
			}
			fields[i] = types.Field{Name: f.Name, Type: t}
		}
		return types.NamedTuple(fields...), nil

	case n.Foreign != "":
		if r.registry == nil {
			return nil, errors.InvalidSpec([]string{path}, "foreign type without a registry")
		}
		ft, ok := r.registry.Lookup(n.Foreign)
		if !ok {
			return nil, errors.InvalidSpec([]string{path},
				fmt.Sprintf("foreign type %q not registered", n.Foreign))
		}
		return types.ForeignOf(ft), nil

	default:
		return nil, errors.InvalidSpec([]string{path}, "empty type expression")
	}
}
