// Package buffer provides a reusable transform buffer type and pools for
// scratch space. Transforms accept raw slices; Buffer is an optional
// convenience that sizes real buffers with the padded row pitch of an
// in-place real transform and helps callers reuse allocations.
package buffer
