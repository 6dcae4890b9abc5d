// Package sweep drives the sampler across a linear grid of model-parameter
// points and, for the uncoupled model, compares each point against the
// closed-form law.
//
// What:
//
//   - Range.Grid produces points+1 equally spaced values from Start to End
//     inclusive, value i = Start + i·(End−Start)/points with the last value
//     exactly End; points == 0 degenerates to the single value Start.
//   - NearestNeighbor interpolates temperature, field, and both couplings
//     together over the same point index and runs the sampler at each tuple.
//   - ZeroCoupling forces Jx = Jy = 0, sweeps (T, h) only, and reports per
//     point the ideal values m = tanh(βh), e = −h·tanh(βh), χ = β·sech²(βh),
//     c_v = (βh)²·sech²(βh) along with residuals (ideal − simulated).
//
// Why:
//
//   - Phase structure lives in how observables move with T, h, and the
//     couplings; one Config value holds every tunable so independent sweeps
//     share no process-wide state.
//   - The uncoupled model has an exact solution, which makes ZeroCoupling a
//     built-in correctness probe for the whole pipeline.
//
// State:
//
//   - The SAME lattice evolves through every point of a sweep; it is NOT
//     reset between points. Each point's chain therefore starts from the
//     previous point's final configuration — an order-dependent contract
//     callers rely on for annealing-style scans.
//
// Validation:
//
//   - The whole sweep is checked before the first sweep point runs: sampler
//     options and every temperature grid value (strictly positive). A sweep
//     with any invalid point fails as a whole, naming the point, with the
//     lattice untouched.
//
// Errors:
//
//   - ErrInvalidPoints: negative point count.
//   - ErrNilLattice, ErrNilRand: missing collaborators.
//   - metropolis.ErrInvalidTemperature (wrapped with the point index).
package sweep
