// Package convect implements an explicit first-order upwind scheme for the
// 1-D linear convection equation du/dt + c*du/dx = 0.
//
// Each timestep applies the forward-time backward-space update
//
//	u[i] = u[i] - c*(dt/dx)*(u[i] - u[i-1])
//
// reading only the previous step's complete snapshot via a pair of swapped
// buffers. The left neighbor of the first grid point is selected by a
// [Boundary] mode: [Wrap] (the default, effectively periodic) or [Clamp]
// (first point held fixed).
//
// The scheme is stable only for Courant numbers c*dt/dx <= 1; nothing here
// enforces that. Use [Courant] to check before running.
package convect
