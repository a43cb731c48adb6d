// Copyright 2026 The svfmt Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import "fmt"

// LeafVisitor receives each leaf together with the chain of enclosing node
// kinds, root-first and excluding the leaf itself. The context slice is
// reused between calls; Clone it to retain it.
type LeafVisitor func(leaf *Leaf, context Context)

// Traverse walks the tree depth-first, pushing each interior node's kind
// onto the context on entry and popping it on exit. Nil child slots are
// skipped. A childless interior node contributes its kind and visits
// nothing.
func Traverse(root Symbol, visit LeafVisitor) {
	if root == nil {
		return
	}
	context := Context{}
	var walk func(Symbol)
	walk = func(s Symbol) {
		switch s := s.(type) {
		case *Leaf:
			visit(s, context)
		case *Node:
			context = append(context, s.Kind)
			for _, child := range s.Children {
				if child != nil {
					walk(child)
				}
			}
			context = context[:len(context)-1]
		default:
			panic(fmt.Errorf("unhandled symbol type %T", s))
		}
	}
	walk(root)
}

// Path addresses a node positionally: the sequence of child indices from the
// root down to the node, where indices count nil child slots.
type Path []int

// PathLeafVisitor additionally receives the positional path of the leaf.
// Both the context and the path slices are reused between calls.
type PathLeafVisitor func(leaf *Leaf, context Context, path Path)

// TraversePath is Traverse with positional path tracking. It produces
// context values identical to Traverse for the same tree.
func TraversePath(root Symbol, visit PathLeafVisitor) {
	if root == nil {
		return
	}
	context := Context{}
	path := Path{}
	var walk func(Symbol)
	walk = func(s Symbol) {
		switch s := s.(type) {
		case *Leaf:
			visit(s, context, path)
		case *Node:
			context = append(context, s.Kind)
			path = append(path, 0)
			for i, child := range s.Children {
				if child != nil {
					path[len(path)-1] = i
					walk(child)
				}
			}
			path = path[:len(path)-1]
			context = context[:len(context)-1]
		default:
			panic(fmt.Errorf("unhandled symbol type %T", s))
		}
	}
	walk(root)
}
