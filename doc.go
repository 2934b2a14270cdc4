// Package viewmath is the root of a small float32 math toolkit for WebGL
// style render loops.
//
// The sub-packages are:
//   - mat: Mat4 and Vec3 value types, look-at and projection matrices
//   - scalar: Clamp, Lerp and InverseLerp
//   - camera: a lens with lazily refreshed projection caches, an orbit view
//     and YAML configuration
//   - pick: screen-space point selection over pcgol point clouds
//   - glview: uniform upload through webgl-go (GOOS=js only)
//
// This package only holds the shared logger.
package viewmath
