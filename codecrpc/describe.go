// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codecrpc

import "github.com/luxfi/polycodec"

// DescriptorInfo is the JSON form of a polycodec.Descriptor. Ref marks a
// descriptor that refers back to itself or to an ancestor and is therefore
// not expanded.
type DescriptorInfo struct {
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Ref      bool           `json:"ref,omitempty"`
	Elements []*ElementInfo `json:"elements,omitempty"`
}

type ElementInfo struct {
	Name       string          `json:"name"`
	Descriptor *DescriptorInfo `json:"descriptor,omitempty"`
}

// Describe converts d into its JSON form.
func Describe(d *polycodec.Descriptor) *DescriptorInfo {
	return describe(d, make(map[*polycodec.Descriptor]bool))
}

func describe(d *polycodec.Descriptor, path map[*polycodec.Descriptor]bool) *DescriptorInfo {
	if d == nil {
		return nil
	}
	info := &DescriptorInfo{
		Name: d.Name(),
		Kind: d.Kind().String(),
	}
	if path[d] {
		info.Ref = true
		return info
	}
	path[d] = true
	defer delete(path, d)

	for i := 0; i < d.NumElements(); i++ {
		name, _ := d.ElementName(i)
		child, _ := d.ElementDescriptor(i)
		info.Elements = append(info.Elements, &ElementInfo{
			Name:       name,
			Descriptor: describe(child, path),
		})
	}
	return info
}
