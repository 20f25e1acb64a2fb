// Copyright 2026 go-pga Authors
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

package pga

// The regressive product joins subspaces: the join of a and b is the Poincaré
// dual of the exterior product of their duals, so meets and joins live in the
// same algebraic structure. The dual itself is a relabeling of coordinates,
// implemented by the Dual methods on each entity.

// Join computes the regressive product p & q: the line containing both points.
func (p Point) Join(q Point) Line {
	return p.Dual().Wedge(q.Dual()).Dual()
}

// JoinLine computes the regressive product p & l: the plane containing both
// the point and the line.
func (p Point) JoinLine(l Line) Plane {
	return p.Dual().WedgeLine(l.Dual()).Dual()
}

// JoinPoint computes the regressive product l & p. The operands commute.
func (l Line) JoinPoint(p Point) Plane {
	return p.JoinLine(l)
}

// JoinBranch computes the regressive product p & b: the plane containing both
// the point and the branch.
func (p Point) JoinBranch(b Branch) Plane {
	return p.Dual().WedgeIdealLine(b.Dual()).Dual()
}

// JoinPoint computes the regressive product b & p. The operands commute.
func (b Branch) JoinPoint(p Point) Plane {
	return p.JoinBranch(b)
}

// JoinIdealLine computes the regressive product p & l.
func (p Point) JoinIdealLine(l IdealLine) Plane {
	return p.Dual().WedgeBranch(l.Dual()).Dual()
}

// JoinPoint computes the regressive product l & p. The operands commute.
func (l IdealLine) JoinPoint(p Point) Plane {
	return p.JoinIdealLine(l)
}

// JoinPoint computes the regressive product p & q: the signed volume spanned
// by the plane and the point, in the scalar component.
func (p Plane) JoinPoint(q Point) Dual {
	return p.Dual().WedgePlane(q.Dual()).Dual()
}

// JoinPlane computes the regressive product q & p. The operands commute.
func (q Point) JoinPlane(p Plane) Dual {
	return p.JoinPoint(q)
}
