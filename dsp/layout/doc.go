// Package layout holds the shape and stride arithmetic the FFT layer needs
// around its transforms: axis-order conversion, padded storage for in-place
// real transforms, batched strided copies and crops, the quadrant swap that
// centers a spectrum, and N-D permutation.
//
// Two axis orders appear throughout. Image order lists the fastest-varying
// axis first ({x, y, z}); it is the order [Vec2], [MemoryLayout] and the FFT
// facade accept. Native order lists the outermost axis first and is what the
// FFT backends consume. [Shape.Reverse] converts between the two.
//
// All buffers are flat slices addressed through explicit offsets and
// strides. Functions that copy between differently shaped buffers copy the
// overlapping extent only and never report the remainder; callers size their
// buffers.
package layout
