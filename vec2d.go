// Copyright 2022  Il Sub Bang
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

package s2go

// Vec2d is 2D floating-point vector. It carries the (u,v) coordinates of a
// point on a cube face, in range [-1,1] on each axis.
type Vec2d struct {
	x float64 // x component
	y float64 // y component
}

// _v2dEquals checks whether two 2D vectors are equal. Does not consider
// possible false negatives due to floating-point errors.
func _v2dEquals(v1, v2 *Vec2d) bool {
	return v1.x == v2.x && v1.y == v2.y
}
