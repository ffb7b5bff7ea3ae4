// SPDX-License-Identifier: MIT
// Package archive: the archive node.

package archive

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Node is one persisted value.
type Node struct {
	Class    string             `yaml:"class"`
	Props    map[string]any     `yaml:"props,omitempty"`
	Children map[string][]*Node `yaml:"children,omitempty"`
}

// NewNode returns an empty node of the given class.
func NewNode(class string) *Node {
	return &Node{Class: class}
}

// Set stores a scalar property and returns n.
func (n *Node) Set(key string, v any) *Node {
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props[key] = v
	return n
}

// Add appends child to the list under key and returns n.
func (n *Node) Add(key string, child *Node) *Node {
	if n.Children == nil {
		n.Children = make(map[string][]*Node)
	}
	n.Children[key] = append(n.Children[key], child)
	return n
}

// List returns the children under key in insertion order.
func (n *Node) List(key string) []*Node {
	return n.Children[key]
}

// First returns the first child under key.
func (n *Node) First(key string) (*Node, error) {
	l := n.Children[key]
	if len(l) == 0 {
		return nil, fmt.Errorf("%w: %s has no %q child", ErrMalformed, n.Class, key)
	}
	return l[0], nil
}

// DecodeProps decodes the properties into out, a pointer to a struct with
// mapstructure tags. Weak typing is on: "3" decodes into an int field.
func (n *Node) DecodeProps(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(n.Props); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, n.Class, err)
	}
	return nil
}
