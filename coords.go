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

import "math"

// The conversions below use the quadratic projection between the cube-space
// UV coordinates and the cell-space ST coordinates. The quadratic projection
// is the default used for S2 cell IDs; the tangent and linear variants map to
// different cells and must not be used here.

// _uvToST converts a single UV component in range -1 to 1 to the
// corresponding ST component in range 0 to 1.
func _uvToST(c float64) float64 {
	if c >= 0.0 {
		return 0.5 * math.Sqrt(1.0+3.0*c)
	}
	return 1.0 - 0.5*math.Sqrt(1.0-3.0*c)
}

// _stToUV converts a single ST component in range 0 to 1 to the corresponding
// UV component in range -1 to 1.
func _stToUV(c float64) float64 {
	if c >= 0.5 {
		return (1.0 / 3.0) * (4.0*c*c - 1.0)
	}
	return (1.0 / 3.0) * (1.0 - 4.0*(1.0-c)*(1.0-c))
}

// _stToIJ converts an ST component to the integer I or J coordinate of the
// leaf cell containing it. The reference does round(S2_MAX_SIZE*c - 0.5),
// which is equivalent to the floor over the valid ST domain.
func _stToIJ(c float64) int {
	return clamp(int(math.Floor(S2_MAX_SIZE*c)), 0, S2_MAX_SIZE-1)
}

// _siTiToST converts an Si or Ti integer in range 0 to S2_MAX_SI_TI to the
// corresponding ST component in range 0 to 1.
func _siTiToST(si uint64) float64 {
	return (1.0 / S2_MAX_SI_TI) * float64(si)
}

// _xyzToFace finds the cube face a 3D point projects onto. The face is the
// axis with the largest absolute component; ties resolve to the first-found
// largest, in x, y, z order. Faces 3 to 5 are the negative axes.
func _xyzToFace(p *Vec3d) int {
	face := 0
	value := p.x
	if math.Abs(p.y) > math.Abs(value) {
		face = 1
		value = p.y
	}
	if math.Abs(p.z) > math.Abs(value) {
		face = 2
		value = p.z
	}
	if value < 0.0 {
		face += 3
	}
	return face
}

// _validFaceXYZToUV projects a 3D point onto the given cube face, yielding
// the face UV coordinates. The face must be the one the point projects onto,
// so that the divisor component is nonzero.
//
// The per-face axis assignment keeps the Hilbert curve continuous across face
// boundaries.
func _validFaceXYZToUV(face int, p *Vec3d) Vec2d {
	switch face {
	case 0:
		return Vec2d{x: p.y / p.x, y: p.z / p.x}
	case 1:
		return Vec2d{x: -p.x / p.y, y: p.z / p.y}
	case 2:
		return Vec2d{x: -p.x / p.z, y: -p.y / p.z}
	case 3:
		return Vec2d{x: p.z / p.x, y: p.y / p.x}
	case 4:
		return Vec2d{x: p.z / p.y, y: -p.x / p.y}
	default:
		return Vec2d{x: -p.y / p.z, y: -p.x / p.z}
	}
}

// _xyzToFaceUV projects a 3D point onto the cube, returning the face it lands
// on and the UV coordinates within that face.
func _xyzToFaceUV(p *Vec3d) (int, Vec2d) {
	face := _xyzToFace(p)
	return face, _validFaceXYZToUV(face, p)
}

// _faceUVToXYZ converts face UV coordinates back to a 3D point. The returned
// vector is not normalized.
//
// Returns ErrInvalidFace when the face is outside range 0 to 5.
func _faceUVToXYZ(face int, uv *Vec2d) (Vec3d, error) {
	switch face {
	case 0:
		return Vec3d{x: 1, y: uv.x, z: uv.y}, nil
	case 1:
		return Vec3d{x: -uv.x, y: 1, z: uv.y}, nil
	case 2:
		return Vec3d{x: -uv.x, y: -uv.y, z: 1}, nil
	case 3:
		return Vec3d{x: -1, y: -uv.y, z: -uv.x}, nil
	case 4:
		return Vec3d{x: uv.y, y: -1, z: -uv.x}, nil
	case 5:
		return Vec3d{x: uv.y, y: uv.x, z: -1}, nil
	default:
		return Vec3d{}, ErrInvalidFace
	}
}
