package heightfield

// SurfaceFaces emits the top and bottom triangles for every 2x2 window of
// cells that is fully active. Corners are named row-major: TL=(r,c),
// TR=(r,c+1), BL=(r+1,c), BR=(r+1,c+1). The top quad is split along the
// TR-BL diagonal as (TL,TR,BL),(TR,BR,BL), which winds the normal upward;
// the bottom quad uses the reversed order so its normal points down.
//
// Windows touching an inactive cell emit nothing; the silhouette wall
// builder closes the mesh there instead. Corner heights need not match, so
// a window between different extrusion levels becomes a faceted ramp.
func SurfaceFaces(g *Grid, vs *VertexSet) ([][3]int, error) {
	var faces [][3]int

	for r := 0; r < g.Rows()-1; r++ {
		for c := 0; c < g.Cols()-1; c++ {
			if !g.Active(r, c) || !g.Active(r, c+1) || !g.Active(r+1, c) || !g.Active(r+1, c+1) {
				continue
			}

			tl, err := vs.Top(r, c)
			if err != nil {
				return nil, err
			}
			tr, err := vs.Top(r, c+1)
			if err != nil {
				return nil, err
			}
			bl, err := vs.Top(r+1, c)
			if err != nil {
				return nil, err
			}
			br, err := vs.Top(r+1, c+1)
			if err != nil {
				return nil, err
			}

			faces = append(faces,
				[3]int{tl, tr, bl},
				[3]int{tr, br, bl},
			)

			tlb, err := vs.Bottom(r, c)
			if err != nil {
				return nil, err
			}
			trb, err := vs.Bottom(r, c+1)
			if err != nil {
				return nil, err
			}
			blb, err := vs.Bottom(r+1, c)
			if err != nil {
				return nil, err
			}
			brb, err := vs.Bottom(r+1, c+1)
			if err != nil {
				return nil, err
			}

			faces = append(faces,
				[3]int{blb, trb, tlb},
				[3]int{blb, brb, trb},
			)
		}
	}

	return faces, nil
}
