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

// CellIDToNeighbors returns the neighbors of a cell at the same level. When
// edge is set, the four cells across the cell's edges come first, in
// J-1, I+1, J+1, I-1 order. When corner is set, the diagonal cells touching
// the cell's corners follow, in no particular order. Cells at a corner of a
// cube face have only three corner neighbors and face cells have none, since
// only three faces meet at a cube vertex.
//
// Returns ErrInvalidCellID when the cell ID is not valid.
func CellIDToNeighbors(c CellID, edge, corner bool) ([]CellID, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCellID
	}

	level := c.Level()
	size := _sizeIJ(level)
	face, i, j := _cellIDToFaceIJ(c)

	// Offsetting the leaf coordinates of the cell center by the cell's own
	// edge length always lands in the adjacent cell, so the IJ need not be
	// snapped to the cell origin first.
	out := make([]CellID, 0, 8)
	if edge {
		out = append(out,
			_cellIDFromFaceIJSame(face, i, j-size, j-size >= 0).Parent(level),
			_cellIDFromFaceIJSame(face, i+size, j, i+size < S2_MAX_SIZE).Parent(level),
			_cellIDFromFaceIJSame(face, i, j+size, j+size < S2_MAX_SIZE).Parent(level),
			_cellIDFromFaceIJSame(face, i-size, j, i-size >= 0).Parent(level),
		)
	}
	if corner {
		for _, d := range [4][2]int{{size, size}, {size, -size}, {-size, -size}, {-size, size}} {
			ni := i + d[0]
			nj := j + d[1]
			iSame := ni >= 0 && ni < S2_MAX_SIZE
			jSame := nj >= 0 && nj < S2_MAX_SIZE
			if !iSame && !jSame {
				// The diagonal beyond a cube vertex does not exist.
				continue
			}
			out = append(out, _cellIDFromFaceIJSame(face, ni, nj, iSame && jSame).Parent(level))
		}
	}

	return out, nil
}

// _cellIDFromFaceIJSame returns the leaf cell at the given face and IJ,
// wrapping onto the adjacent face when the coordinates fall outside it.
func _cellIDFromFaceIJSame(face, i, j int, sameFace bool) CellID {
	if sameFace {
		return _faceIJToCellID(face, i, j, S2_MAX_LEVEL)
	}
	return _cellIDFromFaceIJWrap(face, i, j)
}

// _cellIDFromFaceIJWrap returns the leaf cell for IJ coordinates lying just
// outside the face, by wrapping them onto the appropriate adjacent face.
//
// The coordinates are converted to a point just beyond the face boundary in
// UV space using the linear projection (any projection works for choosing the
// right face, so the simplest is used), projected through XYZ back onto the
// cube to find the adjacent face, and converted back. The UV coordinates are
// clamped barely outside the face square, since otherwise the reprojection
// division by the new axis component could perturb the other coordinate into
// the wrong leaf cell.
func _cellIDFromFaceIJWrap(face, i, j int) CellID {
	// A leaf cell just beyond the boundary is enough; this also keeps the
	// shifted coordinates below from overflowing.
	i = clamp(i, -1, S2_MAX_SIZE)
	j = clamp(j, -1, S2_MAX_SIZE)

	const scale = 1.0 / S2_MAX_SIZE
	limit := math.Nextafter(1, 2)
	u := math.Max(-limit, math.Min(limit, scale*float64((i<<1)+1-S2_MAX_SIZE)))
	v := math.Max(-limit, math.Min(limit, scale*float64((j<<1)+1-S2_MAX_SIZE)))

	p, _ := _faceUVToXYZ(face, &Vec2d{x: u, y: v})
	newFace, uv := _xyzToFaceUV(&p)
	return _faceIJToCellID(newFace, _stToIJ(0.5*(uv.x+1)), _stToIJ(0.5*(uv.y+1)), S2_MAX_LEVEL)
}
