package heightfield

// WallFaces emits the vertical silhouette walls that close the mesh along
// the boundary of the active region, including the rims of interior holes.
//
// For every active cell and each of its four lattice neighbors, a side
// whose neighbor is inactive or out of grid bounds is a boundary edge. The
// edge can only be closed into a wall quad when the perpendicular neighbor
// sharing that lattice edge is also active, because the quad needs vertex
// pairs at both endpoints: a north or south boundary of (r,c) closes along
// the edge to (r,c+1), a west or east boundary along the edge to (r+1,c).
// An isolated active cell therefore contributes no walls at all and stays
// a vertex-only artifact.
//
// Winding is chosen per side so the outward normal points away from the
// active region.
func WallFaces(g *Grid, vs *VertexSet) ([][3]int, error) {
	var faces [][3]int
	var err error

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.Active(r, c) {
				continue
			}

			// North boundary: outward -y, edge runs +x to (r,c+1).
			if !g.Active(r-1, c) && g.Active(r, c+1) {
				faces, err = appendWall(faces, vs, r, c, r, c+1, true)
				if err != nil {
					return nil, err
				}
			}

			// South boundary: outward +y, same edge direction.
			if !g.Active(r+1, c) && g.Active(r, c+1) {
				faces, err = appendWall(faces, vs, r, c, r, c+1, false)
				if err != nil {
					return nil, err
				}
			}

			// West boundary: outward -x, edge runs +y to (r+1,c).
			if !g.Active(r, c-1) && g.Active(r+1, c) {
				faces, err = appendWall(faces, vs, r, c, r+1, c, false)
				if err != nil {
					return nil, err
				}
			}

			// East boundary: outward +x, same edge direction.
			if !g.Active(r, c+1) && g.Active(r+1, c) {
				faces, err = appendWall(faces, vs, r, c, r+1, c, true)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	return faces, nil
}

// appendWall adds the two triangles of one wall quad spanning from z=0 to
// the top vertices of the cells at (ar,ac) and (br,bc).
//
// With the edge direction u = B-A, the unflipped winding
// (aTop,bTop,aBot),(bTop,bBot,aBot) yields a normal of +y for u=+x and -x
// for u=+y; flip selects the opposite side.
func appendWall(faces [][3]int, vs *VertexSet, ar, ac, br, bc int, flip bool) ([][3]int, error) {
	aTop, err := vs.Top(ar, ac)
	if err != nil {
		return nil, err
	}
	aBot, err := vs.Bottom(ar, ac)
	if err != nil {
		return nil, err
	}
	bTop, err := vs.Top(br, bc)
	if err != nil {
		return nil, err
	}
	bBot, err := vs.Bottom(br, bc)
	if err != nil {
		return nil, err
	}

	if flip {
		return append(faces,
			[3]int{aTop, aBot, bTop},
			[3]int{bTop, aBot, bBot},
		), nil
	}
	return append(faces,
		[3]int{aTop, bTop, aBot},
		[3]int{bTop, bBot, aBot},
	), nil
}
