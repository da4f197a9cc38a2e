// Package export serializes flake meshes for fabrication.
//
// Binary STL is the primary format; ASCII STL and gzip-compressed binary STL
// are provided for inspection and transfer. FileName builds a deterministic
// file name from the parameter tuple.
//
// Example:
//
//	res := flake.Generate(params)
//	f, _ := os.Create(export.FileName(res.Params, "stl"))
//	defer f.Close()
//	if err := export.WriteSTL(f, res.Mesh); err != nil {
//	    return err
//	}
package export
