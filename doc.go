// Package flake generates six-fold symmetric snowflake solids from a small
// parameter tuple.
//
// # Overview
//
// A run is a pure function of [Params]:
//
//	seed text -> Generator -> wedge skeleton -> six-fold segments
//	  -> signed distance field -> marching squares outline
//	  -> smoothed outline -> extruded mesh with relief -> normalized mesh
//
// The same parameters always produce byte-identical segments and meshes.
//
// # Quick Start
//
//	res := flake.Generate(flake.Params{
//	    Seed:       "Ada|Lovelace|6|10",
//	    Complexity: 6,
//	    Thickness:  10,
//	    SizeInches: 4.33,
//	})
//	positions, normals, indices := res.Mesh.Flatten()
//
// # Units
//
// Skeleton, distance field and outline are in local units (a spine is about
// ten units long). [Normalize] converts the mesh to millimeters: the planar
// diameter becomes SizeInches*25.4 and the depth a fixed fraction of it.
//
// # Errors
//
// The core never fails. Out-of-range parameters are clamped, degenerate
// segments are skipped, and a failed contour is replaced by a regular
// polygon (see [Result.Fallback]).
//
// # Collaborators
//
// The export package writes meshes as STL; the preview package renders a
// 2D PNG of the skeleton and outline. cmd/flakegen wires both behind a CLI.
package flake
