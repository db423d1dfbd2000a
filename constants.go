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

const (
	// pi
	M_PI = math.Pi // 3.14159265358979323846

	// pi / 2.0
	M_PI_2 = math.Pi / 2.0 // 1.5707963267948966

	// 2.0 * pi
	M_2PI = 2.0 * math.Pi // 6.28318530717958647692528676655900576839433

	// pi / 180
	M_PI_180 = math.Pi / 180 // 0.0174532925199432957692369076848861271111
	// 180 / pi
	M_180_PI = 180 / math.Pi // 57.29577951308232087679815481410517033240547

	// max S2 cell level; each level is represented by two bits in the cell ID
	S2_MAX_LEVEL = 30

	// the number of faces of the S2 cube
	S2_NUM_FACES = 6

	// the number of bits in a cell ID used for specifying the base face
	S2_FACE_BITS = 3

	// the number of bits in a cell ID used for specifying the position along
	// the Hilbert curve, including the trailing marker bit
	S2_POS_BITS = 2*S2_MAX_LEVEL + 1

	// the number of leaf cells along each axis of a face; I and J range from
	// 0 to S2_MAX_SIZE-1
	S2_MAX_SIZE = 1 << S2_MAX_LEVEL

	// the maximum value of the Si/Ti integers used when mapping from IJ to ST.
	// This is twice the max value of I and J, since Si/Ti allow referencing
	// both the center and edge of a leaf cell
	S2_MAX_SI_TI = 1 << (S2_MAX_LEVEL + 1)

	// mask that specifies the swap orientation bit for the Hilbert curve
	S2_SWAP_MASK = 1

	// mask that specifies the invert orientation bit for the Hilbert curve
	S2_INVERT_MASK = 2

	// the number of bits per I and J in the lookup tables
	S2_LOOKUP_BITS = 4
)
