// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
)

// Node is a position in the scene graph tree, backed by an
// [xyz.Group]. Entities attached to it are [xyz.Solid] children of
// the group, placed relative to its pose.
type Node struct {

	// Group is the xyz group of the node. Its Pose.Pos is the
	// position relative to the parent node.
	Group *xyz.Group

	sm *Manager
}

// Name returns the node name.
func (nd *Node) Name() string {
	return nd.Group.Name
}

// Pos returns the position relative to the parent node.
func (nd *Node) Pos() math32.Vector3 {
	return nd.Group.Pose.Pos
}

// Parent returns the parent node, which is nil for the root.
func (nd *Node) Parent() *Node {
	gp, ok := nd.Group.Parent.(*xyz.Group)
	if !ok {
		return nil
	}
	return nd.sm.nodes[gp.Name]
}

// Children returns the child nodes in creation order.
func (nd *Node) Children() []*Node {
	var chs []*Node
	for _, kid := range nd.Group.Children {
		if gp, ok := kid.(*xyz.Group); ok {
			chs = append(chs, nd.sm.nodes[gp.Name])
		}
	}
	return chs
}

// Objects returns the attached entities in attach order.
func (nd *Node) Objects() []*Entity {
	var ents []*Entity
	for _, kid := range nd.Group.Children {
		if sld, ok := kid.(*xyz.Solid); ok {
			ents = append(ents, nd.sm.entByName[sld.Name])
		}
	}
	return ents
}

// CreateChild creates a child node at the given relative position.
// An empty name is replaced with a generated one.
func (nd *Node) CreateChild(name string, pos math32.Vector3) (*Node, error) {
	sm := nd.sm
	if name == "" {
		name = sm.autoName("Node")
	}
	if _, has := sm.nodes[name]; has {
		return nil, fmt.Errorf("%w: node %q", ErrDuplicateName, name)
	}
	gp := xyz.NewGroup(nd.Group)
	gp.SetName(name)
	gp.Defaults()
	gp.Pose.Pos = pos
	ch := &Node{Group: gp, sm: sm}
	sm.nodes[name] = ch
	return ch, nil
}

// SetPosition sets the relative position.
func (nd *Node) SetPosition(x, y, z float32) *Node {
	nd.Group.SetPos(x, y, z)
	return nd
}

// WorldPosition returns the position of the node in the scene,
// updating the world matrices of the node and its ancestors.
func (nd *Node) WorldPosition() math32.Vector3 {
	var chain []*xyz.Group
	for n := nd; n != nil; n = n.Parent() {
		chain = append(chain, n.Group)
	}
	par := math32.Identity4()
	for _, gp := range slices.Backward(chain) {
		gp.Pose.UpdateMatrix()
		gp.Pose.UpdateWorldMatrix(par)
		par = &gp.Pose.WorldMatrix
	}
	return nd.Group.Pose.WorldPos()
}

// AttachObject adds the entity's solid to this node. An entity can be
// attached to at most one node.
func (nd *Node) AttachObject(ent *Entity) error {
	if pn := ent.ParentNode(); pn != nil {
		return fmt.Errorf("%w: %q is attached to %q", ErrAlreadyAttached, ent.Name(), pn.Name())
	}
	nd.Group.AddChild(ent.Solid)
	ent.node = nd
	return nil
}

// DetachObject removes the entity's solid from this node, if attached
// here. The solid is kept for reattaching.
func (nd *Node) DetachObject(ent *Entity) {
	if ent.node != nd {
		return
	}
	kids := &nd.Group.Children
	if idx := tree.IndexOf(*kids, tree.Node(ent.Solid)); idx >= 0 {
		*kids = slices.Delete(*kids, idx, idx+1)
	}
	ent.Solid.Parent = nil
	ent.Solid.Scene = nil
	ent.node = nil
}

// Walk calls fun for this node and every descendant, depth first.
// Returning false from fun skips the node's children.
func (nd *Node) Walk(fun func(n *Node) bool) {
	if !fun(nd) {
		return
	}
	for _, ch := range nd.Children() {
		ch.Walk(fun)
	}
}
