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

// NodeKind is the closed enumeration of grammar constructs the spacing rules
// consult. Only node kinds that influence a formatting decision are listed;
// the external parser may collapse everything else to Unknown.
type NodeKind int

const (
	NodeKind_Unknown NodeKind = iota

	// Expressions.

	NodeKind_Expression
	NodeKind_UnaryPrefixExpression
	NodeKind_BinaryExpression
	NodeKind_ConditionExpression // ternary ?:
	NodeKind_StreamingConcatenation

	// Dimensions, ranges and selects.

	NodeKind_DimensionScalar
	NodeKind_DimensionRange
	NodeKind_DimensionSlice
	NodeKind_CycleDelayRange
	NodeKind_PackedDimensions
	NodeKind_UnpackedDimensions
	NodeKind_ValueRange
	NodeKind_DataTypeImplicitBasicIdDimensions

	// Ports and instances.

	NodeKind_Port
	NodeKind_ActualNamedPort
	NodeKind_GateInstance
	NodeKind_PrimitiveGateInstance
	NodeKind_ModuleHeader
	NodeKind_InstantiationType
	NodeKind_BindTargetInstance

	// Identifiers and labels.

	NodeKind_UnqualifiedId
	NodeKind_BlockIdentifier
	NodeKind_LabeledStatement
	NodeKind_GenerateBlock

	// Case-like items.

	NodeKind_CaseItem
	NodeKind_CaseInsideItem
	NodeKind_CasePatternItem
	NodeKind_GenerateCaseItem
	NodeKind_PropertyCaseItem
	NodeKind_RandSequenceCaseItem

	// Bodies opened with '{'.

	NodeKind_BraceGroup
	NodeKind_ConstraintDeclaration
	NodeKind_CoverPoint
	NodeKind_EnumType

	// Class inheritance.

	NodeKind_ExtendsList
)

var nodeKindNames = map[NodeKind]string{
	NodeKind_Unknown:                            "Unknown",
	NodeKind_Expression:                         "Expression",
	NodeKind_UnaryPrefixExpression:              "UnaryPrefixExpression",
	NodeKind_BinaryExpression:                   "BinaryExpression",
	NodeKind_ConditionExpression:                "ConditionExpression",
	NodeKind_StreamingConcatenation:             "StreamingConcatenation",
	NodeKind_DimensionScalar:                    "DimensionScalar",
	NodeKind_DimensionRange:                     "DimensionRange",
	NodeKind_DimensionSlice:                     "DimensionSlice",
	NodeKind_CycleDelayRange:                    "CycleDelayRange",
	NodeKind_PackedDimensions:                   "PackedDimensions",
	NodeKind_UnpackedDimensions:                 "UnpackedDimensions",
	NodeKind_ValueRange:                         "ValueRange",
	NodeKind_DataTypeImplicitBasicIdDimensions:  "DataTypeImplicitBasicIdDimensions",
	NodeKind_Port:                               "Port",
	NodeKind_ActualNamedPort:                    "ActualNamedPort",
	NodeKind_GateInstance:                       "GateInstance",
	NodeKind_PrimitiveGateInstance:              "PrimitiveGateInstance",
	NodeKind_ModuleHeader:                       "ModuleHeader",
	NodeKind_InstantiationType:                  "InstantiationType",
	NodeKind_BindTargetInstance:                 "BindTargetInstance",
	NodeKind_UnqualifiedId:                      "UnqualifiedId",
	NodeKind_BlockIdentifier:                    "BlockIdentifier",
	NodeKind_LabeledStatement:                   "LabeledStatement",
	NodeKind_GenerateBlock:                      "GenerateBlock",
	NodeKind_CaseItem:                           "CaseItem",
	NodeKind_CaseInsideItem:                     "CaseInsideItem",
	NodeKind_CasePatternItem:                    "CasePatternItem",
	NodeKind_GenerateCaseItem:                   "GenerateCaseItem",
	NodeKind_PropertyCaseItem:                   "PropertyCaseItem",
	NodeKind_RandSequenceCaseItem:               "RandSequenceCaseItem",
	NodeKind_BraceGroup:                         "BraceGroup",
	NodeKind_ConstraintDeclaration:              "ConstraintDeclaration",
	NodeKind_CoverPoint:                         "CoverPoint",
	NodeKind_EnumType:                           "EnumType",
	NodeKind_ExtendsList:                        "ExtendsList",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown node kind %d", int(k))
}

// Symbol is either a *Node (interior node) or a *Leaf. The set of
// implementations is closed; traversal switches over it exhaustively.
type Symbol interface {
	isSymbol()
}

// Node is an interior syntax node grouping children under a grammar
// construct. Child slots may be nil: error recovery leaves placeholders, and
// traversal skips them while their positional index remains meaningful.
type Node struct {
	Kind     NodeKind
	Children []Symbol
}

// Leaf wraps exactly one token.
type Leaf struct {
	Token Token
}

func (*Node) isSymbol() {}
func (*Leaf) isSymbol() {}

// NewNode builds an interior node. Nil children are kept as placeholders.
func NewNode(kind NodeKind, children ...Symbol) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewLeaf wraps a token in a leaf node.
func NewLeaf(token Token) *Leaf {
	return &Leaf{Token: token}
}
