package coefficients

// CylinderDeltaFS computes the solution coefficients for a 2D cylindrical
// shell with delta forcing at radius rp and free-slip boundaries at both
// r=Rm and r=Rp. Singular at n=1 (the n-1 divisor).
func CylinderDeltaFS(Rp, Rm, rp float64, n int, g, nu, sign float64) (cs Set) {
	var (
		alphaPM, alphaMP = branch(Rp/rp, Rm/rp, sign)
		pm               = sign
		fn               = float64(n)
	)
	cs.A = -0.125 * (pow(alphaMP, 2*n-2) - 1) * g * pm * pow(rp, -n+2) /
		((pow(alphaMP, 2*n-2) - pow(alphaPM, 2*n-2)) * (fn - 1) * nu)
	cs.B = -0.125 * (pow(alphaMP, 2*n+2) - 1) * pow(alphaPM, 2*n+2) * g * pm * pow(rp, n+2) /
		((pow(alphaMP, 2*n+2) - pow(alphaPM, 2*n+2)) * (fn + 1) * nu)
	cs.C = 0.125 * (pow(alphaMP, 2*n+2) - 1) * g * pm /
		((pow(alphaMP, 2*n+2) - pow(alphaPM, 2*n+2)) * (fn + 1) * nu * pow(rp, n))
	cs.D = 0.125 * (pow(alphaMP, 2*n-2) - 1) * pow(alphaPM, 2*n-2) * g * pm * pow(rp, n) /
		((pow(alphaMP, 2*n-2) - pow(alphaPM, 2*n-2)) * (fn - 1) * nu)
	return
}

// CylinderDeltaNS is the zero-slip (no-slip) counterpart of CylinderDeltaFS.
// The two shells' responses couple, so the expressions do not separate in
// alpha_p and alpha_m the way the free-slip ones do.
func CylinderDeltaNS(Rp, Rm, rp float64, n int, g, nu, sign float64) (cs Set) {
	var (
		alphaP   = Rp / rp
		alphaM   = Rm / rp
		pm, mp   = sign, -sign
		pmi, mpi = int(sign), -int(sign)
		fn       = float64(n)
		ratio    = alphaM / alphaP
	)
	// shared characteristic denominator
	den := fn*fn*pow(ratio-1/ratio, 2) - pow(pow(ratio, n)-pow(ratio, -n), 2)

	cs.A = -0.125 * (((alphaM*alphaM-alphaP*alphaP)*fn-(fn+1)*pm+pow(alphaM, -2*n)-pow(alphaP, -2*n))*(fn-1) +
		(alphaM*alphaM*pow(alphaP, -2*n)-alphaP*alphaP*pow(alphaM, -2*n))*fn +
		(fn*fn*pow(ratio, 2*mpi)-pow(ratio, 2*n*pmi))*pm) *
		g * pow(rp, -n+2) / (den * (fn - 1) * nu)
	cs.B = -0.125 * (((alphaM*alphaM-alphaP*alphaP)*fn-(fn-1)*pm-pow(alphaM, 2*n)+pow(alphaP, 2*n))*(fn+1) -
		(alphaM*alphaM*pow(alphaP, 2*n)-pow(alphaM, 2*n)*alphaP*alphaP)*fn +
		(fn*fn*pow(ratio, 2*mpi)-pow(ratio, 2*mpi*n))*pm) *
		g * pow(rp, n+2) / (den * (fn + 1) * nu)
	cs.C = -0.125 * ((fn*fn*pow(ratio, 2*pmi)-pow(ratio, 2*n*pmi))*mp -
		(mp*(fn-1)+fn*(1/(alphaM*alphaM)-1/(alphaP*alphaP))-pow(alphaM, -2*n)+pow(alphaP, -2*n))*(fn+1) -
		fn*(1/(pow(alphaM, 2*n)*alphaP*alphaP)-1/(alphaM*alphaM*pow(alphaP, 2*n)))) *
		g / (den * (fn + 1) * nu * pow(rp, n))
	cs.D = -0.125 * ((fn*fn*pow(ratio, 2*pmi)-pow(ratio, 2*mpi*n))*mp -
		(mp*(fn+1)+fn*(1/(alphaM*alphaM)-1/(alphaP*alphaP))+pow(alphaM, 2*n)-pow(alphaP, 2*n))*(fn-1) +
		fn*(pow(alphaM, 2*n)/(alphaP*alphaP)-pow(alphaP, 2*n)/(alphaM*alphaM))) *
		g * pow(rp, n) / (den * (fn - 1) * nu)
	return
}

// CylinderDeltaNSFS is the mixed-boundary variant with the anomaly at
// radius Rd. The asymmetric conditions prevent collapsing to a single
// alpha-ratio symmetry, so the expression is kept in explicit powers of
// all three radii exactly as derived.
func CylinderDeltaNSFS(Rp, Rm, Rd float64, n int, g, nu, sign float64) (cs Set) {
	var (
		fn = float64(n)
		// x0=X^n, x1=X^-n, x2=X^(n+2), x3=X^(-n+2) for X in {Rm, Rp, Rd}
		m0, m1, m2, m3 = pow(Rm, n), pow(Rm, -n), pow(Rm, n+2), pow(Rm, -n+2)
		p0, p1, p2, p3 = pow(Rp, n), pow(Rp, -n), pow(Rp, n+2), pow(Rp, -n+2)
		d0, d1, d2, d3 = pow(Rd, n), pow(Rd, -n), pow(Rd, n+2), pow(Rd, -n+2)

		denAD = p3*m0*fn - m3*p0*fn - p3*m0 + m3*p0
		denBC = m1*p2*fn - m2*p1*fn + m1*p2 - m2*p1
	)
	if sign > 0 {
		cs.A = -(d3*m0 - m3*d0) * g * Rd * Rd * p3 / (nu * d3 * d0 * denAD * 8)
		cs.B = -p2 * (m1*d2 - m2*d1) * g * Rd * Rd / (nu * d2 * d1 * denBC * 8)
		cs.C = p1 * (m1*d2 - m2*d1) * g * Rd * Rd / (nu * d2 * d1 * denBC * 8)
		cs.D = (d3*m0 - m3*d0) * p0 * g * Rd * Rd / (nu * d3 * d0 * denAD * 8)
		return
	}
	cs.A = (p3*d0 - d3*p0) * g * Rd * Rd * m3 / (nu * d3 * d0 * denAD * 8)
	cs.B = -m2 * (p1*d2 - p2*d1) * g * Rd * Rd / (nu * d2 * d1 * denBC * 8)
	cs.C = (p1*d2 - p2*d1) * m1 * g * Rd * Rd / (nu * d2 * d1 * denBC * 8)
	cs.D = -m0 * (p3*d0 - d3*p0) * g * Rd * Rd / (nu * d3 * d0 * denAD * 8)
	return
}
