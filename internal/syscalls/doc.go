// Package syscalls decodes raw syscall operands into readable text.
//
// It carries the static constant tables (Darwin flag and errno values,
// matching the capture platform), a name-keyed registry of per-syscall
// argument decoders, and the return-value classifier. Everything in the
// package is total: unknown names fall back to a verbatim decoder,
// unparseable numerics come back unchanged, and short argument lists pad
// with a placeholder instead of failing.
package syscalls
