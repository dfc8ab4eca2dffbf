package tri

// VertexRing returns the vertices exactly k steps from c, starting from the
// -120 degree corner and proceeding counter-clockwise. If k==0, returns [c].
func VertexRing(c Vertex, k int) []Vertex {
	if k <= 0 {
		return []Vertex{c}
	}
	res := make([]Vertex, 0, 6*k)
	// start position: c + dir[4]*k, the walk along dir[side] keeps 120 degrees
	// ahead of the current corner
	cur := c.Translate(VertexDirections[4].Vector().MulN(k * UnitLength))
	for side := 0; side < 6; side++ {
		step := VertexDirections[side].Vector().MulN(UnitLength)
		for i := 0; i < k; i++ {
			res = append(res, cur)
			cur = cur.Translate(step)
		}
	}
	return res
}

// VertexDisk returns all vertices at most r steps from c.
func VertexDisk(c Vertex, r int) []Vertex {
	if r < 0 {
		return nil
	}
	res := make([]Vertex, 0, 1+3*r*(r+1))
	for x := -r; x <= r; x++ {
		for y := max(-r, -x-r); y <= min(r, -x+r); y++ {
			res = append(res, c.Translate(Axial{X: x, Y: y}.MulN(UnitLength)))
		}
	}
	return res
}

// TrianglesInDisk returns the triangles whose three corners all lie within r
// steps of c, in the order their first corner appears in VertexDisk.
func TrianglesInDisk(c Vertex, r int) []Triangle {
	disk := VertexDisk(c, r)
	res := make([]Triangle, 0, 6*r*r)
	seen := make(map[Triangle]bool, 6*r*r)
	for _, v := range disk {
		for t := range v.AdjacentTriangles() {
			if seen[t] {
				continue
			}
			seen[t] = true
			inside := true
			for corner := range t.Vertices() {
				if corner.DistanceTo(c) > r {
					inside = false
					break
				}
			}
			if inside {
				res = append(res, t)
			}
		}
	}
	return res
}
