package shellescape

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// system carries the host facilities shell resolution needs. Everything is
// injected so resolution never reads ambient state mid-call.
type system struct {
	goos     string
	env      map[string]string
	fs       afero.Afero
	readlink func(string) (string, error)
}

func hostSystem() *system {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return &system{
		goos:     runtime.GOOS,
		env:      env,
		fs:       afero.Afero{Fs: afero.NewOsFs()},
		readlink: os.Readlink,
	}
}

func (s *system) windows() bool {
	if s.goos == "windows" {
		return true
	}
	// POSIX emulation layers on Windows identify themselves via OSTYPE
	switch s.env["OSTYPE"] {
	case "cygwin", "msys":
		return true
	}
	return false
}

func (s *system) getenv(names ...string) string {
	for _, name := range names {
		if v := s.env[name]; v != "" {
			return v
		}
	}
	return ""
}

func (s *system) defaultShell() string {
	if s.windows() {
		if v := s.getenv("ComSpec", "COMSPEC"); v != "" {
			return v
		}
		return "cmd.exe"
	}
	return "/bin/sh"
}

// candidates lists the paths to probe for one specifier. Windows commands
// are usually named without their PATHEXT extension.
func (s *system) candidates(p string) []string {
	if !s.windows() {
		return []string{p}
	}
	pathext := s.getenv("PATHEXT")
	if pathext == "" {
		pathext = ".COM;.EXE;.BAT;.CMD"
	}
	cands := []string{p}
	for _, ext := range strings.Split(pathext, ";") {
		if ext == "" {
			continue
		}
		cands = append(cands, p+strings.ToLower(ext))
	}
	return cands
}

func (s *system) executableExists(p string) bool {
	info, err := s.fs.Stat(p)
	return err == nil && !info.IsDir()
}

// which resolves a shell specifier to an executable path. Specifiers that
// contain a path separator are probed directly, everything else goes
// through a PATH search.
func (s *system) which(name string) (string, error) {
	seps := "/"
	listSep := ":"
	dirSep := "/"
	if s.windows() {
		seps = `\/`
		listSep = ";"
		dirSep = `\`
	}
	if strings.ContainsAny(name, seps) {
		for _, cand := range s.candidates(name) {
			if s.executableExists(cand) {
				return cand, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrShellNotFound, name)
	}
	for _, dir := range strings.Split(s.getenv("PATH", "Path"), listSep) {
		if dir == "" {
			continue
		}
		dir = strings.TrimRight(dir, dirSep)
		for _, cand := range s.candidates(dir + dirSep + name) {
			if s.executableExists(cand) {
				return cand, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrShellNotFound, name)
}

// resolveShellName maps a shell specifier to its dialect key: locate the
// executable, follow a symlink if there is one, and take the base name.
func resolveShellName(spec string, sys *system) (string, error) {
	exe, err := sys.which(spec)
	if err != nil {
		return "", err
	}
	// a failed readlink just means the path is not a link
	if target, lerr := sys.readlink(exe); lerr == nil {
		exe = target
	}
	name := baseName(sys, exe)
	if sys.windows() {
		name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	}
	return name, nil
}

func baseName(sys *system, p string) string {
	if sys.windows() {
		if i := strings.LastIndexAny(p, `\/`); i >= 0 {
			return p[i+1:]
		}
		return p
	}
	return path.Base(p)
}
