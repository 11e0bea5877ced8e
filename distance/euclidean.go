package distance

import "github.com/mmuldo/codi/colorspace"

func deltas(c1, c2 colorspace.RGB) (dr, dg, db float64) {
	return float64(c1.R) - float64(c2.R),
		float64(c1.G) - float64(c2.G),
		float64(c1.B) - float64(c2.B)
}

// Euclidean is the squared distance in raw RGB space.
type Euclidean struct{}

func (Euclidean) Name() string { return "Euclidean" }
func (Euclidean) Key() string  { return "euclidean" }

func (Euclidean) Distance(c1, c2 colorspace.RGB) float64 {
	dr, dg, db := deltas(c1, c2)
	return dr*dr + dg*dg + db*db
}

// EuclideanImproved is the "redmean" weighted RGB distance, which leans the
// red and blue weights on the mean red level of the pair.
//
// https://www.compuphase.com/cmetric.htm
type EuclideanImproved struct{}

func (EuclideanImproved) Name() string { return "Euclidean Improved" }
func (EuclideanImproved) Key() string  { return "euclidean-improved" }

func (EuclideanImproved) Distance(c1, c2 colorspace.RGB) float64 {
	redMean := (float64(c1.R) + float64(c2.R)) / 2
	dr, dg, db := deltas(c1, c2)
	wr := (2 + redMean/256) * dr
	wb := (2 + (255-redMean)/256) * db
	return wr*wr + 4*dg*dg + wb*wb
}
