package hcl

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// yamlToValue parses a YAML document into a generic value. An empty
// document is read as an empty object.
func yamlToValue(src []byte) (cty.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return cty.NilVal, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return cty.EmptyObjectVal, nil
	}
	return yamlNodeToValue(doc.Content[0])
}

// yamlNodeToValue converts one node recursively. Sequences become tuples and
// mappings become objects; for repeated mapping keys the last one wins.
func yamlNodeToValue(node *yaml.Node) (cty.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return cty.EmptyObjectVal, nil
		}
		return yamlNodeToValue(node.Content[0])

	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)

	case yaml.ScalarNode:
		return yamlScalarToValue(node)

	case yaml.SequenceNode:
		elems := make([]cty.Value, 0, len(node.Content))
		for i, item := range node.Content {
			val, err := yamlNodeToValue(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in sequence element %d: %w", i, err)
			}
			elems = append(elems, val)
		}
		return cty.TupleVal(elems), nil

	case yaml.MappingNode:
		attrs := make(map[string]cty.Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return cty.NilVal, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			val, err := yamlNodeToValue(valNode)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in key '%s': %w", keyNode.Value, err)
			}
			attrs[keyNode.Value] = val
		}
		return cty.ObjectVal(attrs), nil

	default:
		return cty.NilVal, fmt.Errorf("line %d: unexpected YAML node kind %v", node.Line, node.Kind)
	}
}

func yamlScalarToValue(node *yaml.Node) (cty.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return cty.NullVal(cty.DynamicPseudoType), nil

	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return cty.NilVal, err
		}
		return cty.BoolVal(b), nil

	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			// Too large for int64; let cty parse the literal digits.
			val, perr := cty.ParseNumberVal(node.Value)
			if perr != nil {
				return cty.NilVal, err
			}
			return val, nil
		}
		return cty.NumberIntVal(n), nil

	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return cty.NilVal, err
		}
		if math.IsNaN(f) {
			return cty.NilVal, fmt.Errorf("line %d: NaN is not a valid number", node.Line)
		}
		return cty.NumberFloatVal(f), nil

	default:
		return cty.StringVal(node.Value), nil
	}
}
