// Package pycode inspects Python source produced by a model. It strips
// markdown fences and classifies imported packages so the executor knows
// what needs installing.
package pycode

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var (
	fenceRe      = regexp.MustCompile("(?s)```(?:python)?[ \t]*\n(.*?)\n```")
	importRe     = regexp.MustCompile(`^import\s+([a-zA-Z_][a-zA-Z0-9_]*)`)
	fromImportRe = regexp.MustCompile(`^from\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+import`)
)

// Extract returns the Python code contained in a model response. Responses
// usually wrap the code in a markdown fence, with or without a language tag;
// when no fence is found the trimmed response is returned as-is.
func Extract(response string) string {
	if m := fenceRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}

	return strings.TrimSpace(response)
}

// Imports lists the top-level package names imported by a piece of Python
// code, sorted and deduplicated. Only `import x` and `from x import ...`
// statements at the start of a line count; commented lines do not.
func Imports(code string) []string {
	seen := make(map[string]struct{})

	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := importRe.FindStringSubmatch(trimmed); m != nil {
			seen[m[1]] = struct{}{}
		}
		if m := fromImportRe.FindStringSubmatch(trimmed); m != nil {
			seen[m[1]] = struct{}{}
		}
	}

	imports := lo.Keys(seen)
	sort.Strings(imports)

	return imports
}

// ThirdParty lists the imported packages that are not part of the Python
// standard library.
func ThirdParty(code string) []string {
	return lo.Filter(Imports(code), func(pkg string, _ int) bool {
		return !IsStdlib(pkg)
	})
}

// IsStdlib reports whether a package ships with Python 3.
func IsStdlib(pkg string) bool {
	_, ok := stdlibModules[pkg]

	return ok
}

var stdlibModules = lo.SliceToMap([]string{
	"abc", "aifc", "argparse", "array", "ast", "asynchat", "asyncio", "asyncore",
	"atexit", "audioop", "base64", "bdb", "binascii", "binhex", "bisect", "builtins",
	"bz2", "calendar", "cgi", "cgitb", "chunk", "cmath", "cmd", "code", "codecs",
	"codeop", "collections", "colorsys", "compileall", "concurrent", "configparser",
	"contextlib", "contextvars", "copy", "copyreg", "crypt", "csv", "ctypes", "curses",
	"dataclasses", "datetime", "dbm", "decimal", "difflib", "dis", "distutils", "doctest",
	"email", "encodings", "enum", "errno", "faulthandler", "fcntl", "filecmp", "fileinput",
	"fnmatch", "fractions", "ftplib", "functools", "gc", "getopt", "getpass", "gettext",
	"glob", "graphlib", "grp", "gzip", "hashlib", "heapq", "hmac", "html", "http", "idlelib",
	"imaplib", "imghdr", "imp", "importlib", "inspect", "io", "ipaddress", "itertools",
	"json", "keyword", "lib2to3", "linecache", "locale", "logging", "lzma", "mailbox",
	"mailcap", "marshal", "math", "mimetypes", "mmap", "modulefinder", "msilib", "msvcrt",
	"multiprocessing", "netrc", "nis", "nntplib", "numbers", "operator", "optparse", "os",
	"ossaudiodev", "parser", "pathlib", "pdb", "pickle", "pickletools", "pipes", "pkgutil",
	"platform", "plistlib", "poplib", "posix", "posixpath", "pprint", "profile", "pstats",
	"pty", "pwd", "py_compile", "pyclbr", "pydoc", "queue", "quopri", "random", "re",
	"readline", "reprlib", "resource", "rlcompleter", "runpy", "sched", "secrets", "select",
	"selectors", "shelve", "shlex", "shutil", "signal", "site", "smtpd", "smtplib", "sndhdr",
	"socket", "socketserver", "spwd", "sqlite3", "ssl", "stat", "statistics", "string",
	"stringprep", "struct", "subprocess", "sunau", "symbol", "symtable", "sys", "sysconfig",
	"syslog", "tabnanny", "tarfile", "telnetlib", "tempfile", "termios", "test", "textwrap",
	"threading", "time", "timeit", "tkinter", "token", "tokenize", "tomllib", "trace",
	"traceback", "tracemalloc", "tty", "turtle", "turtledemo", "types", "typing", "unicodedata",
	"unittest", "urllib", "uu", "uuid", "venv", "warnings", "wave", "weakref", "webbrowser",
	"winreg", "winsound", "wsgiref", "xdrlib", "xml", "xmlrpc", "zipapp", "zipfile", "zipimport",
	"zlib", "_thread",
}, func(mod string) (string, struct{}) {
	return mod, struct{}{}
})
