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

// Package pga implements 3D projective geometric algebra over Cl(3,0,1):
// points, lines, planes, rotations, translations, and screw motions as
// multivector values composed with a small set of products. It is a drop-in
// substitute for homogeneous 4x4 matrices and dual quaternions in graphics,
// robotics, and animation code.
//
// The algebra has generators e0, e1, e2, e3 with e0*e0 = 0 and
// e1*e1 = e2*e2 = e3*e3 = 1. The sixteen basis blades are stored in up to two
// four-lane partitions per entity, using a fixed layout every kernel assumes
// (lane 0 is the low lane):
//
//	p0: (e0, e1, e2, e3)
//	p1: (scalar, e23, e31, e12)
//	p2: (e0123, e01, e02, e03)
//	p3: (e123, e032, e013, e021)
//
// Entities are plain values; every function is referentially transparent and
// safe to call from multiple goroutines. No kernel allocates or returns an
// error: degenerate inputs (normalizing a zero bivector, taking the log of the
// identity motor) propagate NaN or Inf per IEEE-754 and are the caller's
// responsibility to detect.
package pga
