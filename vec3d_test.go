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

import (
	"math"
	"testing"
)

func TestGeoToVec3dAxes(t *testing.T) {
	cases := []struct {
		latDegs float64
		lonDegs float64
		want    Vec3d
	}{
		{0, 0, Vec3d{1, 0, 0}},
		{0, 90, Vec3d{0, 1, 0}},
		{90, 0, Vec3d{0, 0, 1}},
		{0, 180, Vec3d{-1, 0, 0}},
		{-90, 0, Vec3d{0, 0, -1}},
	}
	for _, tc := range cases {
		var g GeoCoord
		g.SetDegs(tc.latDegs, tc.lonDegs)
		v := _geoToVec3d(&g)
		if _pointSquareDist(&v, &tc.want) > 1e-30 {
			t.Errorf("_geoToVec3d(%v, %v) = %+v, want %+v", tc.latDegs, tc.lonDegs, v, tc.want)
		}
	}
}

func TestGeoToVec3dIsUnit(t *testing.T) {
	var origin Vec3d
	for _, latDegs := range []float64{-90, -45, -12.34, 0, 33.87, 89.9} {
		for _, lonDegs := range []float64{-180, -90.01, 0, 45, 123.456} {
			var g GeoCoord
			g.SetDegs(latDegs, lonDegs)
			v := _geoToVec3d(&g)
			if norm := _pointSquareDist(&v, &origin); math.Abs(norm-1) > 1e-15 {
				t.Errorf("|_geoToVec3d(%v, %v)|^2 = %v, want 1", latDegs, lonDegs, norm)
			}
		}
	}
}

func TestVec3dGeoRoundTrip(t *testing.T) {
	for _, latDegs := range []float64{-89.99, -45, 0, 12.3456789, 66.6} {
		for _, lonDegs := range []float64{-179.99, -45, 0, 90, 151.2} {
			var g GeoCoord
			g.SetDegs(latDegs, lonDegs)
			v := _geoToVec3d(&g)
			back := _vec3dToGeo(&v)
			if !geoAlmostEqual(&g, &back) {
				t.Errorf("(%v, %v) round tripped to (%v, %v)", latDegs, lonDegs, back.LatDegs(), back.LonDegs())
			}

			// Scaling the vector must not change the angles.
			scaled := Vec3d{v.x * 7.5, v.y * 7.5, v.z * 7.5}
			backScaled := _vec3dToGeo(&scaled)
			if !geoAlmostEqual(&g, &backScaled) {
				t.Errorf("scaled (%v, %v) round tripped to (%v, %v)", latDegs, lonDegs,
					backScaled.LatDegs(), backScaled.LonDegs())
			}
		}
	}
}

func TestSquare(t *testing.T) {
	if got := _square(-3); got != 9 {
		t.Errorf("_square(-3) = %v, want 9", got)
	}
}
