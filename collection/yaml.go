package collection

import (
	"gopkg.in/yaml.v3"
)

var _ yaml.Marshaler = (*Collection[any])(nil)

// MarshalYAML renders ToArray as YAML, keeping key order. Lists become
// sequences, everything else a mapping.
func (c *Collection[V]) MarshalYAML() (interface{}, error) {
	arr, err := c.toArray()
	if err != nil {
		return nil, err
	}
	return yamlNode(arr)
}

func (c *Collection[V]) ToYAML() (string, error) {
	node, err := c.MarshalYAML()
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	c, ok := v.(*Collection[any])
	if !ok {
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
	entries := c.All()
	if isList(entries) {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range entries {
			child, err := yamlNode(e.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		tag := "!!str"
		if e.Key.IsIndex() {
			tag = "!!int"
		}
		child, err := yamlNode(e.Value)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: e.Key.String()}, child)
	}
	return n, nil
}
