package shellescape

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

var errNotSymlink = errors.New("not a symlink")

// fakeSystem builds a system backed by an in-memory filesystem. MemMapFs
// treats Windows-style paths as opaque names, which keeps these tests
// portable across host platforms.
func fakeSystem(goos string, env map[string]string, files ...string) *system {
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	for _, name := range files {
		if err := fs.WriteFile(name, []byte(""), 0o755); err != nil {
			panic(err)
		}
	}
	return &system{
		goos: goos,
		env:  env,
		fs:   fs,
		readlink: func(string) (string, error) {
			return "", errNotSymlink
		},
	}
}

func unixSystem() *system {
	return fakeSystem("linux", map[string]string{"PATH": "/bin:/usr/bin"},
		"/bin/sh", "/bin/bash", "/bin/dash", "/bin/zsh", "/bin/csh", "/usr/bin/fish")
}

func windowsSystem() *system {
	return fakeSystem("windows", map[string]string{
		"Path":    `C:\Windows\System32;C:\Windows\System32\WindowsPowerShell\v1.0`,
		"ComSpec": `C:\Windows\System32\cmd.exe`,
	},
		`C:\Windows\System32\cmd.exe`,
		`C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`,
	)
}

func TestWindowsDetection(t *testing.T) {
	cases := []struct {
		goos     string
		env      map[string]string
		expected bool
	}{
		{"linux", map[string]string{}, false},
		{"darwin", map[string]string{}, false},
		{"windows", map[string]string{}, true},
		{"linux", map[string]string{"OSTYPE": "cygwin"}, true},
		{"linux", map[string]string{"OSTYPE": "msys"}, true},
		{"linux", map[string]string{"OSTYPE": "linux-gnu"}, false},
	}
	for _, c := range cases {
		sys := fakeSystem(c.goos, c.env)
		if actual := sys.windows(); actual != c.expected {
			t.Errorf("windows() with goos=%s env=%v == %v, expected %v", c.goos, c.env, actual, c.expected)
		}
	}
}

func TestGetenv(t *testing.T) {
	sys := fakeSystem("linux", map[string]string{"A": "", "B": "x"})
	if actual := sys.getenv("A", "B"); actual != "x" {
		t.Errorf("expected x, got %s", actual)
	}
	if actual := sys.getenv("C"); actual != "" {
		t.Errorf("expected empty string, got %s", actual)
	}
}

func TestDefaultShell(t *testing.T) {
	sys := fakeSystem("linux", map[string]string{})
	if actual := sys.defaultShell(); actual != "/bin/sh" {
		t.Errorf("expected /bin/sh, got %s", actual)
	}
	sys = fakeSystem("windows", map[string]string{"ComSpec": `C:\Windows\System32\cmd.exe`})
	if actual := sys.defaultShell(); actual != `C:\Windows\System32\cmd.exe` {
		t.Errorf("expected ComSpec value, got %s", actual)
	}
	sys = fakeSystem("windows", map[string]string{"COMSPEC": `D:\cmd.exe`})
	if actual := sys.defaultShell(); actual != `D:\cmd.exe` {
		t.Errorf("expected COMSPEC value, got %s", actual)
	}
	sys = fakeSystem("windows", map[string]string{})
	if actual := sys.defaultShell(); actual != "cmd.exe" {
		t.Errorf("expected cmd.exe, got %s", actual)
	}
}

func TestCandidates(t *testing.T) {
	sys := fakeSystem("linux", map[string]string{})
	actual := sys.candidates("/bin/sh")
	if len(actual) != 1 || actual[0] != "/bin/sh" {
		t.Errorf("expected [/bin/sh], got %v", actual)
	}

	sys = fakeSystem("windows", map[string]string{})
	actual = sys.candidates(`C:\tools\pwsh`)
	expected := []string{
		`C:\tools\pwsh`,
		`C:\tools\pwsh.com`,
		`C:\tools\pwsh.exe`,
		`C:\tools\pwsh.bat`,
		`C:\tools\pwsh.cmd`,
	}
	if len(actual) != len(expected) {
		t.Fatalf("expected %d candidates, got %d: %v", len(expected), len(actual), actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("candidate %d == %s, expected %s", i, actual[i], expected[i])
		}
	}

	sys = fakeSystem("windows", map[string]string{"PATHEXT": ".EXE;.PS1"})
	actual = sys.candidates(`C:\tools\pwsh`)
	if len(actual) != 3 || actual[1] != `C:\tools\pwsh.exe` || actual[2] != `C:\tools\pwsh.ps1` {
		t.Errorf("expected PATHEXT candidates, got %v", actual)
	}
}

func TestWhich(t *testing.T) {
	sys := unixSystem()

	actual, err := sys.which("zsh")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if actual != "/bin/zsh" {
		t.Errorf("expected /bin/zsh, got %s", actual)
	}

	actual, err = sys.which("/bin/bash")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if actual != "/bin/bash" {
		t.Errorf("expected /bin/bash, got %s", actual)
	}

	_, err = sys.which("ksh")
	if !errors.Is(err, ErrShellNotFound) {
		t.Errorf("expected ErrShellNotFound, got %v", err)
	}

	_, err = sys.which("/opt/shell")
	if !errors.Is(err, ErrShellNotFound) {
		t.Errorf("expected ErrShellNotFound, got %v", err)
	}
}

func TestWhichWindows(t *testing.T) {
	sys := windowsSystem()

	actual, err := sys.which("powershell")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	expected := `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`
	if actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	actual, err = sys.which("cmd.exe")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if actual != `C:\Windows\System32\cmd.exe` {
		t.Errorf("expected cmd.exe path, got %s", actual)
	}
}

func TestResolveShellName(t *testing.T) {
	tests := []struct {
		name     string
		sys      *system
		spec     string
		expected string
	}{
		{name: "path specifier", sys: unixSystem(), spec: "/bin/bash", expected: "bash"},
		{name: "name specifier", sys: unixSystem(), spec: "zsh", expected: "zsh"},
		{name: "sh without symlink", sys: unixSystem(), spec: "/bin/sh", expected: "sh"},
		{
			name:     "windows case folding",
			sys:      fakeSystem("windows", map[string]string{}, `C:\Tools\PowerShell.EXE`),
			spec:     `C:\Tools\PowerShell.EXE`,
			expected: "powershell",
		},
		{name: "windows explicit extension", sys: windowsSystem(), spec: "cmd.exe", expected: "cmd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := resolveShellName(tt.spec, tt.sys)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("resolveShellName(%q) == %q, expected %q", tt.spec, actual, tt.expected)
			}
		})
	}
}

func TestResolveShellNameSymlink(t *testing.T) {
	sys := unixSystem()
	sys.readlink = func(p string) (string, error) {
		if p == "/bin/sh" {
			return "/usr/bin/dash", nil
		}
		return "", errNotSymlink
	}
	actual, err := resolveShellName("/bin/sh", sys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actual != "dash" {
		t.Errorf("expected dash, got %s", actual)
	}
}

func TestResolveShellNameNotFound(t *testing.T) {
	_, err := resolveShellName("ksh", unixSystem())
	if !errors.Is(err, ErrShellNotFound) {
		t.Errorf("expected ErrShellNotFound, got %v", err)
	}
}

func TestBaseName(t *testing.T) {
	unix := fakeSystem("linux", map[string]string{})
	if actual := baseName(unix, "/usr/bin/bash"); actual != "bash" {
		t.Errorf("expected bash, got %s", actual)
	}
	win := fakeSystem("windows", map[string]string{})
	if actual := baseName(win, `C:\Windows\System32\cmd.exe`); actual != "cmd.exe" {
		t.Errorf("expected cmd.exe, got %s", actual)
	}
	if actual := baseName(win, `C:/Windows/cmd.exe`); actual != "cmd.exe" {
		t.Errorf("expected cmd.exe, got %s", actual)
	}
}
