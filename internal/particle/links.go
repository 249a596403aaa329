package particle

// Link is a connection line between two entities of one population.
type Link struct {
	A, B     int
	Distance float64
	Opacity  float64
}

// Links returns every pair closer than threshold. Opacity falls off linearly
// from maxOpacity at distance 0 to zero at the threshold.
func Links(es []Entity, threshold, maxOpacity float64) []Link {
	if threshold <= 0 {
		return nil
	}
	var out []Link
	for i := 0; i < len(es); i++ {
		for j := i + 1; j < len(es); j++ {
			d := es[i].Pos.Sub(es[j].Pos).Len()
			if d >= threshold {
				continue
			}
			out = append(out, Link{
				A:        i,
				B:        j,
				Distance: d,
				Opacity:  LinkOpacity(d, threshold, maxOpacity),
			})
		}
	}
	return out
}

func LinkOpacity(d, threshold, maxOpacity float64) float64 {
	if d >= threshold {
		return 0
	}
	return (threshold - d) / threshold * maxOpacity
}
