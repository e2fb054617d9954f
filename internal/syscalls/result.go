package syscalls

import (
	"math"
	"strconv"
)

// Syscalls whose successful return value is a descriptor.
var fdReturning = map[string]bool{
	"open":            true,
	"open_nocancel":   true,
	"openat":          true,
	"openat_nocancel": true,
	"guarded_open_np": true,
	"dup":             true,
	"dup2":            true,
	"socket":          true,
	"accept":          true,
	"kqueue":          true,
	"shm_open":        true,
	"fileport_makefd": true,
}

// Syscalls whose successful return value is an address.
var addrReturning = map[string]bool{
	"mmap":             true,
	"mach_vm_allocate": true,
	"mach_vm_map":      true,
	"brk":              true,
	"sbrk":             true,
}

// Syscalls whose successful return value is a byte count.
var countReturning = map[string]bool{
	"read":            true,
	"read_nocancel":   true,
	"write":           true,
	"write_nocancel":  true,
	"pread":           true,
	"pread_nocancel":  true,
	"pwrite":          true,
	"pwrite_nocancel": true,
	"readv":           true,
	"writev":          true,
	"sendto":          true,
	"recvfrom":        true,
	"sendmsg":         true,
	"recvmsg":         true,
}

const (
	// errnoBandFloor opens the band of values that look like sign-extended
	// errno returns. Known imprecision: a legitimate address at or above
	// this boundary is indistinguishable from an error shape here and is
	// rendered verbatim on the defensive path below.
	errnoBandFloor = 0xFFFFFFFF
	// negative64 is the first value that is negative under 64-bit two's
	// complement.
	negative64 = uint64(1) << 63
)

// FormatResult classifies and renders a raw return value. Total and
// deterministic over the full 64-bit space for any name.
func FormatResult(name, raw string, isError bool) string {
	v, ok := parseNum(raw)
	if !ok {
		return raw
	}

	if isError {
		// The usual error sentinels all collapse to the literal -1.
		if v == 0 || v == math.MaxUint64 || (v >= errnoBandFloor && v < negative64) {
			return "-1"
		}
		return strconv.FormatUint(magnitude(v), 10)
	}

	// Not flagged as an error but shaped like one: the upstream error flag
	// and the value's sign disagree. Render the raw string untouched.
	// Covers both the negative 64-bit range and the errno band below it.
	if v >= errnoBandFloor {
		return raw
	}

	switch {
	case fdReturning[name]:
		if v <= maxDescriptor {
			return "fd " + strconv.FormatUint(v, 10)
		}
		return raw
	case addrReturning[name]:
		return raw
	case countReturning[name]:
		return strconv.FormatUint(v, 10)
	}

	if v == 0 {
		return "0"
	}
	if v > maxDescriptor {
		return raw
	}
	return strconv.FormatUint(v, 10)
}

// magnitude returns the absolute value of v interpreted as a 64-bit
// two's-complement integer.
func magnitude(v uint64) uint64 {
	if v >= negative64 {
		return ^v + 1
	}
	return v
}
