package constraint

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// smallAngle is the rotation angle below which the closed-form velocity map
// is replaced by its first-order expansion. The closed form divides by θ² and
// by 1−cos θ; the latter cancels catastrophically already around 1e-7, so the
// guard sits well above that. At 1e-4 the dropped second-order term is ~1e-9.
const smallAngle = 1e-4

// angleAxis decomposes a unit quaternion into its principal rotation angle in
// [0, π] and unit axis. At zero rotation the axis is arbitrary; the x axis is
// returned so callers always receive a unit vector.
func angleAxis(q quat.Number) (float64, r3.Vec) {
	if q.Real < 0 {
		// q and -q encode the same rotation; keep the angle in [0, π].
		q = quat.Scale(-1, q)
	}
	im := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	s := r3.Norm(im)
	angle := 2 * math.Atan2(s, q.Real)
	if s < 1e-12 {
		return angle, r3.Vec{X: 1}
	}
	return angle, r3.Scale(1/s, im)
}

// velocityMap is the closed-form 3×3 map from the angular velocity of a link
// to the time derivative of the rotation-vector (exponential-coordinate)
// parameterization θ·a:
//
//	E = I − ½K + (K²/θ²)·(1 − ½θ·sin θ/(1−cos θ)),  K = θ·[a]×
//
// For θ under smallAngle the first-order limit I − ½K is used instead, which
// keeps every entry finite down to θ = 0.
func velocityMap(angle float64, axis r3.Vec) *mat.Dense {
	k := skew(r3.Scale(angle, axis))

	out := mat.NewDense(3, 3, nil)
	out.Scale(-0.5, k)
	out.Set(0, 0, out.At(0, 0)+1)
	out.Set(1, 1, out.At(1, 1)+1)
	out.Set(2, 2, out.At(2, 2)+1)

	t := math.Abs(angle)
	if t < smallAngle {
		return out
	}

	c := 1 - 0.5*t*math.Sin(t)/(1-math.Cos(t))
	var k2 mat.Dense
	k2.Mul(k, k)
	k2.Scale(c/(t*t), &k2)
	out.Add(out, &k2)
	return out
}

// skew returns the cross-product matrix [v]× with [v]×·w = v×w.
func skew(v r3.Vec) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}
