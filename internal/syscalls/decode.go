package syscalls

import (
	"strconv"
	"strings"
)

// atFDCWD is the Darwin AT_FDCWD sentinel (-2) as it appears in captured
// operands. The *at call variants use it to mean "relative to the current
// working directory"; it must never be rendered as a descriptor.
const atFDCWD = 0xfffffffffffffffe

// maxDescriptor is the highest value still presumed to be a descriptor or
// small integer. Anything larger is presumed to be an address and passes
// through verbatim.
const maxDescriptor = 65535

// missingArg is rendered for arguments the capture did not record.
const missingArg = "?"

// Decode renders the argument list of a syscall as one parenthesized,
// comma-separated string. It is total: any name and any argument list of
// any length produce a valid result.
func Decode(name string, args []string) string {
	return "(" + strings.Join(DecodeArgs(name, args), ", ") + ")"
}

// DecodeArgs renders each argument individually. Syscalls without a
// registered decoder fall back to the verbatim argument list.
func DecodeArgs(name string, args []string) []string {
	if d, ok := registry[name]; ok {
		return d(args)
	}
	return append([]string(nil), args...)
}

// parseNum parses a hex-or-decimal operand string.
func parseNum(s string) (uint64, bool) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// fdString renders values in descriptor range as a tagged descriptor and
// leaves everything else untouched.
func fdString(s string) string {
	v, ok := parseNum(s)
	if !ok || v > maxDescriptor {
		return s
	}
	return "fd " + strconv.FormatUint(v, 10)
}

// atFDString is fdString plus the AT_FDCWD sentinel used by *at variants.
func atFDString(s string) string {
	if v, ok := parseNum(s); ok && v == atFDCWD {
		return "AT_FDCWD"
	}
	return fdString(s)
}

// intString renders small values as decimal and leaves larger ones
// (presumed addresses) untouched.
func intString(s string) string {
	v, ok := parseNum(s)
	if !ok || v > maxDescriptor {
		return s
	}
	return strconv.FormatUint(v, 10)
}

// rawString passes an operand through unchanged.
func rawString(s string) string {
	return s
}

// flagString bitwise-decomposes a value against an ordered flag table and
// joins the matched names. A zero value renders as the domain's dedicated
// zero name when it has one. Unmatched residue bits are appended in hex
// so no information is lost.
func flagString(s string, table []Flag, zeroName string) string {
	v, ok := parseNum(s)
	if !ok {
		return s
	}
	if v == 0 {
		if zeroName != "" {
			return zeroName
		}
		return "0"
	}

	var names []string
	var matched uint64
	for _, f := range table {
		if v&f.Mask == f.Mask {
			names = append(names, f.Name)
			matched |= f.Mask
		}
	}
	if len(names) == 0 {
		return s
	}
	if rest := v &^ matched; rest != 0 {
		names = append(names, "0x"+strconv.FormatUint(rest, 16))
	}
	return strings.Join(names, "|")
}

// cmdString matches a control-command code exactly against its table.
// Commands are codes rather than masks, so decomposition does not apply.
func cmdString(s string, table []Flag) string {
	v, ok := parseNum(s)
	if !ok {
		return s
	}
	for _, f := range table {
		if f.Mask == v {
			return f.Name
		}
	}
	return intString(s)
}

func openFlagString(s string) string { return flagString(s, OpenFlags, "O_RDONLY") }
func protFlagString(s string) string { return flagString(s, ProtFlags, "PROT_NONE") }
func mapFlagString(s string) string  { return flagString(s, MapFlags, "") }
func fcntlCmdString(s string) string { return cmdString(s, FcntlCmds) }

// decoder renders a positional argument list.
type decoder func(args []string) []string

// fields builds a decoder from per-position renderers. Missing trailing
// arguments render as the placeholder; extra arguments beyond the known
// positions pass through verbatim.
func fields(kinds ...func(string) string) decoder {
	return func(args []string) []string {
		out := make([]string, 0, len(kinds))
		for i, kind := range kinds {
			if i >= len(args) {
				out = append(out, missingArg)
				continue
			}
			out = append(out, kind(args[i]))
		}
		for i := len(kinds); i < len(args); i++ {
			out = append(out, args[i])
		}
		return out
	}
}

// registry maps normalized syscall names to their argument decoders.
// _nocancel variants share the decoder of their base call.
var registry = map[string]decoder{
	"open":             fields(rawString, openFlagString, intString),
	"open_nocancel":    fields(rawString, openFlagString, intString),
	"guarded_open_np":  fields(rawString, rawString, rawString, openFlagString, intString),
	"openat":           fields(atFDString, rawString, openFlagString, intString),
	"openat_nocancel":  fields(atFDString, rawString, openFlagString, intString),
	"close":            fields(fdString),
	"close_nocancel":   fields(fdString),
	"guarded_close_np": fields(fdString, rawString),
	"read":             fields(fdString, rawString, intString),
	"read_nocancel":    fields(fdString, rawString, intString),
	"write":            fields(fdString, rawString, intString),
	"write_nocancel":   fields(fdString, rawString, intString),
	"pread":            fields(fdString, rawString, intString, intString),
	"pread_nocancel":   fields(fdString, rawString, intString, intString),
	"pwrite":           fields(fdString, rawString, intString, intString),
	"pwrite_nocancel":  fields(fdString, rawString, intString, intString),
	"readv":            fields(fdString, rawString, intString),
	"writev":           fields(fdString, rawString, intString),
	"mmap":             fields(rawString, intString, protFlagString, mapFlagString, fdString, intString),
	"munmap":           fields(rawString, intString),
	"mprotect":         fields(rawString, intString, protFlagString),
	"minherit":         fields(rawString, intString, intString),
	"madvise":          fields(rawString, intString, intString),
	"msync":            fields(rawString, intString, intString),
	"fcntl":            fields(fdString, fcntlCmdString, rawString),
	"fcntl_nocancel":   fields(fdString, fcntlCmdString, rawString),
	"ioctl":            fields(fdString, rawString, rawString),
	"lseek":            fields(fdString, intString, intString),
	"dup":              fields(fdString),
	"dup2":             fields(fdString, fdString),
	"fstat":            fields(fdString, rawString),
	"fstat64":          fields(fdString, rawString),
	"fstatat64":        fields(atFDString, rawString, rawString, intString),
	"fstatfs64":        fields(fdString, rawString),
	"fsync":            fields(fdString),
	"ftruncate":        fields(fdString, intString),
	"faccessat":        fields(atFDString, rawString, intString, intString),
	"unlinkat":         fields(atFDString, rawString, intString),
	"renameat":         fields(atFDString, rawString, atFDString, rawString),
	"mkdirat":          fields(atFDString, rawString, intString),
	"socket":           fields(intString, intString, intString),
	"connect":          fields(fdString, rawString, intString),
	"connect_nocancel": fields(fdString, rawString, intString),
	"bind":             fields(fdString, rawString, intString),
	"listen":           fields(fdString, intString),
	"accept":           fields(fdString, rawString, rawString),
	"sendto":           fields(fdString, rawString, intString, intString, rawString, intString),
	"recvfrom":         fields(fdString, rawString, intString, intString, rawString, rawString),
	"sendmsg":          fields(fdString, rawString, intString),
	"recvmsg":          fields(fdString, rawString, intString),
	"kevent":           fields(fdString, rawString, intString, rawString, intString, rawString),
	"kevent64":         fields(fdString, rawString, intString, rawString, intString, rawString),
	"kqueue":           fields(),
	"pipe":             fields(rawString),
	"shm_open":         fields(rawString, openFlagString, intString),
}
