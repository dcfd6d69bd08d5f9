package colorspace

// This package converts gamma encoded sRGB colors into the OKLab perceptual
// space and its polar OKLCh form, and back. The forward path is:
//
//	sRGB bytes -> [0,1] -> decode gamma -> M1 -> cube root -> M2 -> OKLab
//
// and the inverse path undoes each step in reverse order, finishing with
// gamma encoding and a round-and-clamp into the byte range.
//
// Notes:
// - OKLab L is in [0,1] for in-gamut colors, a and b are roughly in [-0.4,0.4].
// - The matrices are the published OKLab constants. They are literals, never
//   recomputed at runtime.

type Vec3 [3]float64
type Mat3 [3][3]float64

// linear sRGB -> LMS cone response
var m1 = Mat3{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

// cube rooted LMS -> OKLab
var m2 = Mat3{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

// OKLab -> cube rooted LMS
var invM2 = Mat3{
	{1, 0.3963377774, 0.2158037573},
	{1, -0.1055613458, -0.0638541728},
	{1, -0.0894841775, -1.2914855480},
}

// LMS -> linear sRGB
var invM1 = Mat3{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.2684380046, 2.6097574011, -0.3413193965},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}
