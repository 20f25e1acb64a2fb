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

// Projections take a simple form in geometric algebra. When the grade of a
// exceeds the grade of b, the projection of a onto b is (a | b) ^ b: the inner
// product selects the part of b least like a, and meeting b with that part
// recovers the part most like a. When the grade of a is below the grade of b,
// the projection is (a | b) | b instead. In both cases the grade of the result
// matches the grade of a.

// ProjectPointToLine projects the point a onto the line b.
func ProjectPointToLine(a Point, b Line) Point {
	return a.DotLine(b).WedgeLine(b)
}

// ProjectPointToPlane projects the point a onto the plane b.
func ProjectPointToPlane(a Point, b Plane) Point {
	return a.DotPlane(b).WedgePlane(b)
}

// ProjectLineToPlane projects the line a onto the plane b.
func ProjectLineToPlane(a Line, b Plane) Line {
	return a.DotPlane(b).Wedge(b)
}

// ProjectPlaneToPoint produces the plane through b parallel to a.
//
// The point is represented dually as a pencil of planes converging on it.
// a | b selects the line perpendicular to a through b; contracting with b
// again selects the plane of the pencil least like that line.
func ProjectPlaneToPoint(a Plane, b Point) Plane {
	return a.DotPoint(b).DotPoint(b)
}

// ProjectLineToPoint produces the line through b parallel to a.
func ProjectLineToPoint(a Line, b Point) Line {
	return a.DotPoint(b).DotPoint(b)
}

// ProjectPlaneToLine produces the plane containing b as parallel to a as
// possible; when a is parallel to b, the plane through b parallel to a.
func ProjectPlaneToLine(a Plane, b Line) Plane {
	return a.DotLine(b).DotLine(b)
}
