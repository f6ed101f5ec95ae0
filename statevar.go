/*
Copyright © 2026 the Raven authors.
This file is part of Raven.

Raven is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Raven is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Raven.  If not, see <http://www.gnu.org/licenses/>.
*/

package raven

import "fmt"

// SVType is the semantic type of a storage compartment (state
// variable). The set is closed: process connection validation switches
// exhaustively over it.
type SVType int

// Storage compartment types. All water compartments hold depths [mm];
// AET is a diagnostic accumulator holding the actual
// evapotranspiration granted so far within the current time step.
const (
	SVUnknown SVType = iota - 1
	Canopy           // liquid water intercepted by the vegetation canopy
	CanopySnow       // snow intercepted by the vegetation canopy
	Trunk            // water stored on tree trunks (optional)
	Ponded           // water ponded on the land surface
	Snowpack         // ground snowpack
	Soil             // soil moisture (multi-layer)
	Groundwater      // saturated zone storage
	Atmosphere       // sink for evaporated/sublimated mass
	AET              // diagnostic accumulator, actual ET this step [mm]
	Constituent      // mass of a transported constituent (multi-index)
)

var svTypeNames = map[SVType]string{
	Canopy:      "CANOPY",
	CanopySnow:  "CANOPY_SNOW",
	Trunk:       "TRUNK",
	Ponded:      "PONDED_WATER",
	Snowpack:    "SNOW",
	Soil:        "SOIL",
	Groundwater: "GROUNDWATER",
	Atmosphere:  "ATMOSPHERE",
	AET:         "AET",
	Constituent: "CONSTITUENT",
}

func (t SVType) String() string {
	if s, ok := svTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("SVType(%d)", int(t))
}

// SVTypeFromString returns the compartment type with the given name,
// or SVUnknown if the name is not recognized.
func SVTypeFromString(name string) SVType {
	for t, s := range svTypeNames {
		if s == name {
			return t
		}
	}
	return SVUnknown
}

// Multilayer reports whether compartments of this type carry a layer
// index (soil layers, constituent indices).
func (t SVType) Multilayer() bool {
	return t == Soil || t == Constituent
}

const (
	// LayerNone marks a compartment that has no layer dimension.
	LayerNone = -1
	// IndexNotFound is returned by index lookups for compartments that
	// do not exist in the model.
	IndexNotFound = -1
)

// StateIndexer resolves storage compartments to offsets in the state
// vector. Processes hold a StateIndexer; the concrete implementation
// (StateVars, embedded in Model) is owned by the model builder.
type StateIndexer interface {
	// Index returns the state vector offset of the layerless
	// compartment of type t, or IndexNotFound.
	Index(t SVType) int
	// IndexOfLayer returns the offset of layer k of a multi-layer
	// compartment, or IndexNotFound.
	IndexOfLayer(t SVType, k int) int
	// TypeOf returns the semantic type of the compartment at offset i,
	// or SVUnknown if i is out of range.
	TypeOf(i int) SVType
	// LayerOf returns the layer of the compartment at offset i, or
	// LayerNone.
	LayerOf(i int) int
	// Len returns the number of compartments, which is the required
	// length of every state vector.
	Len() int
}

type svKey struct {
	t SVType
	k int
}

// StateVars is the flat registry of storage compartments. Compartments
// are appended in registration order; the offset of a compartment
// never changes once assigned.
type StateVars struct {
	types  []SVType
	layers []int
	index  map[svKey]int
}

// Add registers a compartment of type t at layer k (LayerNone for
// layerless types) and returns its offset. Adding an existing
// compartment is a no-op that returns the existing offset.
func (s *StateVars) Add(t SVType, k int) int {
	if !t.Multilayer() {
		k = LayerNone
	}
	if s.index == nil {
		s.index = make(map[svKey]int)
	}
	if i, ok := s.index[svKey{t, k}]; ok {
		return i
	}
	i := len(s.types)
	s.types = append(s.types, t)
	s.layers = append(s.layers, k)
	s.index[svKey{t, k}] = i
	return i
}

// Index implements StateIndexer.
func (s *StateVars) Index(t SVType) int {
	return s.IndexOfLayer(t, LayerNone)
}

// IndexOfLayer implements StateIndexer.
func (s *StateVars) IndexOfLayer(t SVType, k int) int {
	if !t.Multilayer() {
		k = LayerNone
	}
	if i, ok := s.index[svKey{t, k}]; ok {
		return i
	}
	return IndexNotFound
}

// TypeOf implements StateIndexer.
func (s *StateVars) TypeOf(i int) SVType {
	if i < 0 || i >= len(s.types) {
		return SVUnknown
	}
	return s.types[i]
}

// LayerOf implements StateIndexer.
func (s *StateVars) LayerOf(i int) int {
	if i < 0 || i >= len(s.layers) {
		return LayerNone
	}
	return s.layers[i]
}

// Len implements StateIndexer.
func (s *StateVars) Len() int { return len(s.types) }

// Name returns a human-readable label for the compartment at offset i.
func (s *StateVars) Name(i int) string {
	t := s.TypeOf(i)
	if k := s.LayerOf(i); k != LayerNone {
		return fmt.Sprintf("%v[%d]", t, k)
	}
	return t.String()
}
