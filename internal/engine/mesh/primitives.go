package mesh

import "github.com/chewxy/math32"

const defaultSegments = 36

// PlaneData is a unit plane spanning -1..1 in X and Z at y=0, facing
// +Y.
func PlaneData() Data {
	return Data{
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, 1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, 0, 1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{1, 0, -1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-1, 0, -1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// BoxData is a unit cube centered at the origin. Each face carries its
// own four vertices so normals stay flat.
func BoxData() Data {
	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	h := float32(0.5)
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	d := Data{}
	for _, f := range faces {
		base := uint32(len(d.Vertices))
		for i, c := range f.corners {
			d.Vertices = append(d.Vertices, Vertex{Position: c, Normal: f.normal, TexCoord: uv[i]})
		}
		d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return d
}

// CylinderData is a closed cylinder of radius 1 and height 1, base on
// the XZ plane extending toward +Y.
func CylinderData(segments int) Data {
	d := Data{}

	// Side wall: two rings of vertices with outward normals. The seam
	// vertex is duplicated so texture coordinates wrap cleanly.
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		x := math32.Cos(angle)
		z := math32.Sin(angle)
		u := float32(i) / float32(segments)
		d.Vertices = append(d.Vertices,
			Vertex{Position: [3]float32{x, 0, z}, Normal: [3]float32{x, 0, z}, TexCoord: [2]float32{u, 0}},
			Vertex{Position: [3]float32{x, 1, z}, Normal: [3]float32{x, 0, z}, TexCoord: [2]float32{u, 1}},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		d.Indices = append(d.Indices,
			base, base+2, base+1,
			base+1, base+2, base+3,
		)
	}

	d.appendDisk(0, -1, segments)
	d.appendDisk(1, 1, segments)
	return d
}

// ConeData is a cone of base radius 1 and height 1, base on the XZ
// plane, apex at (0,1,0).
func ConeData(segments int) Data {
	d := Data{}

	// Slanted side. The apex vertex is duplicated per segment so each
	// triangle gets a usable normal and texcoord.
	slope := math32.Sqrt(2) / 2
	for i := 0; i < segments; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(segments)
		a1 := 2 * math32.Pi * float32(i+1) / float32(segments)
		am := (a0 + a1) / 2

		base := uint32(len(d.Vertices))
		d.Vertices = append(d.Vertices,
			Vertex{
				Position: [3]float32{math32.Cos(a0), 0, math32.Sin(a0)},
				Normal:   [3]float32{math32.Cos(a0) * slope, slope, math32.Sin(a0) * slope},
				TexCoord: [2]float32{float32(i) / float32(segments), 0},
			},
			Vertex{
				Position: [3]float32{math32.Cos(a1), 0, math32.Sin(a1)},
				Normal:   [3]float32{math32.Cos(a1) * slope, slope, math32.Sin(a1) * slope},
				TexCoord: [2]float32{float32(i+1) / float32(segments), 0},
			},
			Vertex{
				Position: [3]float32{0, 1, 0},
				Normal:   [3]float32{math32.Cos(am) * slope, slope, math32.Sin(am) * slope},
				TexCoord: [2]float32{(float32(i) + 0.5) / float32(segments), 1},
			},
		)
		d.Indices = append(d.Indices, base, base+2, base+1)
	}

	d.appendDisk(0, -1, segments)
	return d
}

// TorusData is a torus of major radius 1 and tube radius 0.3 lying in
// the XZ plane.
func TorusData(majorSegments, minorSegments int) Data {
	const (
		majorRadius = 1.0
		minorRadius = 0.3
	)
	d := Data{}

	for i := 0; i <= majorSegments; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegments)
		cu, su := math32.Cos(u), math32.Sin(u)

		for j := 0; j <= minorSegments; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegments)
			cv, sv := math32.Cos(v), math32.Sin(v)

			d.Vertices = append(d.Vertices, Vertex{
				Position: [3]float32{
					(majorRadius + minorRadius*cv) * cu,
					minorRadius * sv,
					(majorRadius + minorRadius*cv) * su,
				},
				Normal:   [3]float32{cv * cu, sv, cv * su},
				TexCoord: [2]float32{float32(i) / float32(majorSegments), float32(j) / float32(minorSegments)},
			})
		}
	}

	ring := uint32(minorSegments + 1)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a := uint32(i)*ring + uint32(j)
			b := a + ring
			d.Indices = append(d.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return d
}

// appendDisk adds a flat cap at height y with normal (0, ny, 0),
// wound so the cap faces outward.
func (d *Data) appendDisk(y, ny float32, segments int) {
	center := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices, Vertex{
		Position: [3]float32{0, y, 0},
		Normal:   [3]float32{0, ny, 0},
		TexCoord: [2]float32{0.5, 0.5},
	})
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		x := math32.Cos(angle)
		z := math32.Sin(angle)
		d.Vertices = append(d.Vertices, Vertex{
			Position: [3]float32{x, y, z},
			Normal:   [3]float32{0, ny, 0},
			TexCoord: [2]float32{(x + 1) / 2, (z + 1) / 2},
		})
	}
	for i := 0; i < segments; i++ {
		a := center + 1 + uint32(i)
		if ny > 0 {
			d.Indices = append(d.Indices, center, a+1, a)
		} else {
			d.Indices = append(d.Indices, center, a, a+1)
		}
	}
}
