package syscalls

// Flag is one (bit-mask, name) entry of a flag domain. Table order is
// output order when a value decomposes into several names.
type Flag struct {
	Mask uint64
	Name string
}

// Darwin open(2) flags. Zero is O_RDONLY, which has no bit of its own.
var OpenFlags = []Flag{
	{0x1, "O_WRONLY"},
	{0x2, "O_RDWR"},
	{0x4, "O_NONBLOCK"},
	{0x8, "O_APPEND"},
	{0x10, "O_SHLOCK"},
	{0x20, "O_EXLOCK"},
	{0x40, "O_ASYNC"},
	{0x100, "O_NOFOLLOW"},
	{0x200, "O_CREAT"},
	{0x400, "O_TRUNC"},
	{0x800, "O_EXCL"},
	{0x8000, "O_EVTONLY"},
	{0x20000, "O_NOCTTY"},
	{0x100000, "O_DIRECTORY"},
	{0x200000, "O_SYMLINK"},
	{0x1000000, "O_CLOEXEC"},
	{0x20000000, "O_NOFOLLOW_ANY"},
}

// Memory protection flags for mmap/mprotect.
var ProtFlags = []Flag{
	{0x1, "PROT_READ"},
	{0x2, "PROT_WRITE"},
	{0x4, "PROT_EXEC"},
}

// Darwin mmap(2) mapping flags.
var MapFlags = []Flag{
	{0x1, "MAP_SHARED"},
	{0x2, "MAP_PRIVATE"},
	{0x10, "MAP_FIXED"},
	{0x20, "MAP_RENAME"},
	{0x40, "MAP_NORESERVE"},
	{0x100, "MAP_NOEXTEND"},
	{0x200, "MAP_HASSEMAPHORE"},
	{0x400, "MAP_NOCACHE"},
	{0x800, "MAP_JIT"},
	{0x1000, "MAP_ANON"},
	{0x2000, "MAP_RESILIENT_CODESIGN"},
	{0x4000, "MAP_RESILIENT_MEDIA"},
	{0x8000, "MAP_32BIT"},
	{0x40000, "MAP_UNIX03"},
	{0x80000, "MAP_TPRO"},
}

// Darwin fcntl(2) commands. These are codes, not bit masks, so the
// decoder matches them exactly rather than decomposing them.
var FcntlCmds = []Flag{
	{0, "F_DUPFD"},
	{1, "F_GETFD"},
	{2, "F_SETFD"},
	{3, "F_GETFL"},
	{4, "F_SETFL"},
	{5, "F_GETOWN"},
	{6, "F_SETOWN"},
	{7, "F_GETLK"},
	{8, "F_SETLK"},
	{9, "F_SETLKW"},
	{42, "F_PREALLOCATE"},
	{43, "F_SETSIZE"},
	{44, "F_RDADVISE"},
	{45, "F_RDAHEAD"},
	{48, "F_NOCACHE"},
	{49, "F_LOG2PHYS"},
	{50, "F_GETPATH"},
	{51, "F_FULLFSYNC"},
	{59, "F_ADDFILESIGS"},
	{61, "F_GETPROTECTIONCLASS"},
	{62, "F_SETPROTECTIONCLASS"},
	{67, "F_DUPFD_CLOEXEC"},
	{85, "F_BARRIERFSYNC"},
	{97, "F_ADDFILESIGS_RETURN"},
	{101, "F_SPECULATIVE_READ"},
	{102, "F_GETPATH_NOFIRMLINK"},
}

// Errno is one (code, name) entry of the error-code table.
type Errno struct {
	Code uint64
	Name string
}

// Darwin errno values.
var Errnos = []Errno{
	{1, "EPERM"},
	{2, "ENOENT"},
	{3, "ESRCH"},
	{4, "EINTR"},
	{5, "EIO"},
	{6, "ENXIO"},
	{7, "E2BIG"},
	{8, "ENOEXEC"},
	{9, "EBADF"},
	{10, "ECHILD"},
	{11, "EDEADLK"},
	{12, "ENOMEM"},
	{13, "EACCES"},
	{14, "EFAULT"},
	{15, "ENOTBLK"},
	{16, "EBUSY"},
	{17, "EEXIST"},
	{18, "EXDEV"},
	{19, "ENODEV"},
	{20, "ENOTDIR"},
	{21, "EISDIR"},
	{22, "EINVAL"},
	{23, "ENFILE"},
	{24, "EMFILE"},
	{25, "ENOTTY"},
	{26, "ETXTBSY"},
	{27, "EFBIG"},
	{28, "ENOSPC"},
	{29, "ESPIPE"},
	{30, "EROFS"},
	{31, "EMLINK"},
	{32, "EPIPE"},
	{33, "EDOM"},
	{34, "ERANGE"},
	{35, "EAGAIN"},
	{36, "EINPROGRESS"},
	{37, "EALREADY"},
	{38, "ENOTSOCK"},
	{39, "EDESTADDRREQ"},
	{40, "EMSGSIZE"},
	{41, "EPROTOTYPE"},
	{42, "ENOPROTOOPT"},
	{43, "EPROTONOSUPPORT"},
	{44, "ESOCKTNOSUPPORT"},
	{45, "ENOTSUP"},
	{46, "EPFNOSUPPORT"},
	{47, "EAFNOSUPPORT"},
	{48, "EADDRINUSE"},
	{49, "EADDRNOTAVAIL"},
	{50, "ENETDOWN"},
	{51, "ENETUNREACH"},
	{52, "ENETRESET"},
	{53, "ECONNABORTED"},
	{54, "ECONNRESET"},
	{55, "ENOBUFS"},
	{56, "EISCONN"},
	{57, "ENOTCONN"},
	{58, "ESHUTDOWN"},
	{60, "ETIMEDOUT"},
	{61, "ECONNREFUSED"},
	{62, "ELOOP"},
	{63, "ENAMETOOLONG"},
	{64, "EHOSTDOWN"},
	{65, "EHOSTUNREACH"},
	{66, "ENOTEMPTY"},
	{69, "EDQUOT"},
	{70, "ESTALE"},
	{77, "ENOLCK"},
	{78, "ENOSYS"},
	{84, "EOVERFLOW"},
	{89, "ECANCELED"},
	{92, "EILSEQ"},
	{93, "ENOATTR"},
	{106, "ELAST"},
}

// ErrnoName returns the symbolic name for an errno code, or "" when the
// code is not in the table.
func ErrnoName(code uint64) string {
	for _, e := range Errnos {
		if e.Code == code {
			return e.Name
		}
	}
	return ""
}

// ErrnoCode returns the code for a symbolic errno name.
func ErrnoCode(name string) (uint64, bool) {
	for _, e := range Errnos {
		if e.Name == name {
			return e.Code, true
		}
	}
	return 0, false
}
