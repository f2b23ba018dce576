// SPDX-License-Identifier: MIT
// EigenHermitian computes all eigenvalues and eigenvectors of a complex
// Hermitian matrix using the Jacobi rotation method on its real-symmetric
// embedding.

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// spanResidualTol is the minimum residual norm (after projection onto the
// eigenvectors already accepted) for a candidate to count as a new direction.
const spanResidualTol = 1e-6

// EigenHermitian returns the eigenvalues of m in ascending order together with
// a matrix whose columns are the corresponding orthonormal eigenvectors.
//
// Implementation:
//   - Stage 1: validate m is square and Hermitian within tol·max(1, ‖m‖∞).
//   - Stage 2: embed H = A + iB as the real symmetric S = [[A, −B], [B, A]].
//     Every eigenvalue λ of H appears twice in S with eigenvectors (x, y) and
//     (−y, x), both of which map to the complex eigenvector x + iy (up to phase).
//   - Stage 3: cyclic Jacobi sweeps on S until the off-diagonal Frobenius norm
//     drops below tol, or fail with ErrEigenFailed after maxSweeps.
//   - Stage 4: walk real eigenpairs in ascending order, fold each into a complex
//     candidate, Gram–Schmidt it against accepted vectors and keep it when the
//     residual is a genuinely new direction. Stop after d vectors.
//
// Determinism:
//   - Fixed sweep order (p<q row-major) and a stable sort on eigenvalues.
//
// Complexity:
//   - Time O(sweeps·(2d)³), Space O((2d)²).
func EigenHermitian(m *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if m == nil {
		return nil, nil, matrixErrorf(opEigen, ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenMaxSweeps
	}
	d := m.r
	scale := 1.0
	for _, x := range m.data {
		scale = math.Max(scale, cmplx.Abs(x))
	}
	if !IsHermitian(m, math.Max(DefaultEpsilon, tol)*scale) {
		return nil, nil, matrixErrorf(opEigen, ErrNotHermitian)
	}

	// Stage 2: real symmetric embedding, symmetrised to wash out roundoff.
	n := 2 * d
	s := make([]float64, n*n)
	var i, j int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			h := (m.data[i*d+j] + cmplx.Conj(m.data[j*d+i])) / 2
			a, b := real(h), imag(h)
			s[i*n+j] = a
			s[(i+d)*n+(j+d)] = a
			s[i*n+(j+d)] = -b
			s[(i+d)*n+j] = b
		}
	}

	// Stage 3: Jacobi sweeps.
	vals, vecs, err := jacobiSymmetric(s, n, tol*scale, maxSweeps)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Stage 4: fold real eigenpairs back into d complex eigenvectors.
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	outVals := make([]float64, 0, d)
	accepted := make([]Vector, 0, d)
	for _, idx := range order {
		if len(accepted) == d {
			break
		}
		cand := make(Vector, d)
		for i = 0; i < d; i++ {
			cand[i] = complex(vecs[i*n+idx], vecs[(i+d)*n+idx])
		}
		// Two Gram–Schmidt passes keep the residual honest in finite precision.
		for pass := 0; pass < 2; pass++ {
			for _, q := range accepted {
				proj, _ := q.Inner(cand)
				for i = range cand {
					cand[i] -= proj * q[i]
				}
			}
		}
		if cand.Norm() < spanResidualTol {
			continue
		}
		unit, _ := cand.Normalize()
		accepted = append(accepted, unit)
		outVals = append(outVals, vals[idx])
	}
	if len(accepted) != d {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	q := &Dense{r: d, c: d, data: make([]complex128, d*d)}
	for j, v := range accepted {
		for i = 0; i < d; i++ {
			q.data[i*d+j] = v[i]
		}
	}

	return outVals, q, nil
}

// jacobiSymmetric diagonalises the n×n real symmetric matrix a (row-major,
// consumed in place) and returns its diagonal and the accumulated rotations
// V (eigenvectors in columns, row-major).
func jacobiSymmetric(a []float64, n int, tol float64, maxSweeps int) ([]float64, []float64, error) {
	v := make([]float64, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	var (
		sweep, p, q, k          int
		off, apq, theta, t, c, s float64
		akp, akq                 float64
		converged                bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		off = 0
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				off += a[p*n+q] * a[p*n+q]
			}
		}
		if math.IsNaN(off) {
			return nil, nil, ErrEigenFailed
		}
		if math.Sqrt(off) < tol {
			converged = true
			break
		}
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if apq == 0 {
					continue
				}
				theta = (a[q*n+q] - a[p*n+p]) / (2 * apq)
				t = 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
				c = 1 / math.Sqrt(t*t+1)
				s = t * c

				// A ← A·J (columns p, q)
				for k = 0; k < n; k++ {
					akp, akq = a[k*n+p], a[k*n+q]
					a[k*n+p] = c*akp - s*akq
					a[k*n+q] = s*akp + c*akq
				}
				// A ← Jᵀ·A (rows p, q)
				for k = 0; k < n; k++ {
					akp, akq = a[p*n+k], a[q*n+k]
					a[p*n+k] = c*akp - s*akq
					a[q*n+k] = s*akp + c*akq
				}
				a[p*n+q], a[q*n+p] = 0, 0

				// V ← V·J
				for k = 0; k < n; k++ {
					akp, akq = v[k*n+p], v[k*n+q]
					v[k*n+p] = c*akp - s*akq
					v[k*n+q] = s*akp + c*akq
				}
			}
		}
	}
	if !converged {
		// The last sweep may have finished the job.
		off = 0
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				off += a[p*n+q] * a[p*n+q]
			}
		}
		if math.Sqrt(off) >= tol {
			return nil, nil, ErrEigenFailed
		}
	}

	vals := make([]float64, n)
	for k = 0; k < n; k++ {
		vals[k] = a[k*n+k]
	}

	return vals, v, nil
}

// DominantEigenvector returns the eigenvector belonging to the largest
// eigenvalue of the Hermitian matrix m, with its global phase fixed so that
// the largest-magnitude entry is real and positive. Ties on the eigenvalue
// resolve to the first maximal entry in ascending order.
func DominantEigenvector(m *Dense) (float64, Vector, error) {
	vals, vecs, err := EigenHermitian(m, DefaultEigenTol, DefaultEigenMaxSweeps)
	if err != nil {
		return 0, nil, err
	}
	best := 0
	for i, x := range vals {
		if x > vals[best] {
			best = i
		}
	}
	v, err := vecs.Col(best)
	if err != nil {
		return 0, nil, err
	}
	pivot := 0
	for i, a := range v {
		if cmplx.Abs(a) > cmplx.Abs(v[pivot])+spanResidualTol {
			pivot = i
		}
	}
	if mag := cmplx.Abs(v[pivot]); mag > 0 {
		phase := cmplx.Conj(v[pivot]) / complex(mag, 0)
		for i := range v {
			v[i] *= phase
		}
	}

	return vals[best], v, nil
}
